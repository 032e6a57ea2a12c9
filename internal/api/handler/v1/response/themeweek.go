package response

import (
	"time"

	"github.com/themeweek/showcase-api/internal/domain"
)

// ThemeWeek is the public list shape: the computed video count is always
// present, even when zero.
type ThemeWeek struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	VideosCount int       `json:"videos_count"`
	ResultURL   string    `json:"result_url"`
	ImageURL    string    `json:"image_url"`
}

type ThemeWeekDetail struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	ResultURL   string    `json:"result_url"`
	ImageURL    string    `json:"image_url"`
	Videos      []Video   `json:"videos"`
}

func NewThemeWeek(w domain.ThemeWeek) ThemeWeek {
	return ThemeWeek{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		VideosCount: w.VideosCount,
		ResultURL:   w.ResultURL,
		ImageURL:    w.ImageURL,
	}
}

func NewThemeWeeks(weeks []domain.ThemeWeek) []ThemeWeek {
	out := make([]ThemeWeek, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, NewThemeWeek(w))
	}

	return out
}

func NewThemeWeekDetail(w domain.ThemeWeek, videos []domain.Video) ThemeWeekDetail {
	return ThemeWeekDetail{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		ResultURL:   w.ResultURL,
		ImageURL:    w.ImageURL,
		Videos:      NewVideos(videos),
	}
}
