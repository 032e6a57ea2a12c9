package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	UsersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "users_registered_total", Help: "Total user registrations"},
	)
	VideosSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "videos_submitted_total", Help: "Total member video submissions"},
	)
	VotesCast = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "votes_cast_total", Help: "Total votes recorded"},
	)
)

func Register() {
	prometheus.MustRegister(UsersRegistered, VideosSubmitted, VotesCast)
}
