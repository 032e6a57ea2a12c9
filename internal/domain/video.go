package domain

import "time"

// Video is submitted either by a member (UserID set) or entered by an admin
// on a student's behalf (StudentName set). Author resolves the display name
// for public serialization.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	YoutubeURL  string    `json:"youtube_url"`
	Description string    `json:"description"`
	StudentName string    `json:"student_name,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	ThemeWeekID string    `json:"theme_week_id"`
	CreatedAt   time.Time `json:"created_at"`

	// AuthorUsername is resolved from the owning user on read, empty for
	// admin-entered videos.
	AuthorUsername string `json:"-"`
	// VotesCount is computed on list queries, never stored.
	VotesCount int `json:"votes_count,omitempty"`
}

func (v Video) Author() string {
	if v.AuthorUsername != "" {
		return v.AuthorUsername
	}

	return v.StudentName
}
