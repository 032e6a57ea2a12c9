package domain

import "time"

type ThemeWeek struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ResultURL   string    `json:"result_url"`
	ImageURL    string    `json:"image_url"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`

	// VideosCount is computed on list queries, never stored.
	VideosCount int `json:"videos_count,omitempty"`
}
