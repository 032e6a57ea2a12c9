package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// SubmitVideoRequest is the member submission shape. The owner is taken from
// the token, so no author field is accepted here.
type SubmitVideoRequest struct {
	Title       string `json:"title"`
	YoutubeURL  string `json:"youtube_url"`
	Description string `json:"description"`
	ThemeWeekID string `json:"theme_week_id"`
}

func (req *SubmitVideoRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.YoutubeURL, validation.Required, is.URL),
		validation.Field(&req.ThemeWeekID, validation.Required, is.UUIDv4),
	)
}

// CreateVideoRequest is the admin shape: attribution is a free-text student
// name instead of an owning account.
type CreateVideoRequest struct {
	Title       string `json:"title"`
	YoutubeURL  string `json:"youtube_url"`
	Description string `json:"description"`
	StudentName string `json:"student_name"`
	ThemeWeekID string `json:"theme_week_id"`
}

func (req *CreateVideoRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.YoutubeURL, validation.Required, is.URL),
		validation.Field(&req.StudentName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.ThemeWeekID, validation.Required, is.UUIDv4),
	)
}

// UpdateVideoRequest is partial: absent fields keep their stored values.
type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	YoutubeURL  *string `json:"youtube_url"`
	Description *string `json:"description"`
	StudentName *string `json:"student_name"`
	ThemeWeekID *string `json:"theme_week_id"`
}

func (req *UpdateVideoRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&req.YoutubeURL, is.URL),
		validation.Field(&req.ThemeWeekID, is.UUIDv4),
	)
}
