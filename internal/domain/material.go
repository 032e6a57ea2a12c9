package domain

import "time"

type Material struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StudentName  string    `json:"student_name"`
	MaterialType string    `json:"material_type"` // free-form tag: "youtube", "image", "pdf", ...
	URL          string    `json:"url"`
	IsWinner     bool      `json:"is_winner"`
	ThemeWeekID  string    `json:"theme_week_id"`
	CreatedAt    time.Time `json:"created_at"`
}
