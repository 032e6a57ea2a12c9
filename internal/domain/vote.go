package domain

import "time"

// Vote is immutable once cast. At most one vote exists per (user, video).
type Vote struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	VideoID   string    `json:"video_id"`
	CreatedAt time.Time `json:"created_at"`
}
