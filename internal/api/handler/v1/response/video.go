package response

import (
	"time"

	"github.com/themeweek/showcase-api/internal/domain"
)

// Video is the public shape. Author is the owning user's username for
// member-submitted videos, the admin-entered student name otherwise.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	YoutubeURL  string    `json:"youtube_url"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	ThemeWeekID string    `json:"theme_week_id"`
	VotesCount  int       `json:"votes_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewVideo(v domain.Video) Video {
	return Video{
		ID:          v.ID,
		Title:       v.Title,
		YoutubeURL:  v.YoutubeURL,
		Description: v.Description,
		Author:      v.Author(),
		ThemeWeekID: v.ThemeWeekID,
		VotesCount:  v.VotesCount,
		CreatedAt:   v.CreatedAt,
	}
}

func NewVideos(videos []domain.Video) []Video {
	out := make([]Video, 0, len(videos))
	for _, v := range videos {
		out = append(out, NewVideo(v))
	}

	return out
}
