package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var errEndBeforeStart = errors.New("end_date must not be before start_date")

type CreateThemeWeekRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ResultURL   string    `json:"result_url"`
	ImageURL    string    `json:"image_url"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

func (req *CreateThemeWeekRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.ResultURL, is.URL),
		validation.Field(&req.ImageURL, is.URL),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
	)
	if err != nil {
		return err
	}

	if req.EndDate.Before(req.StartDate) {
		return errEndBeforeStart
	}

	return nil
}

// UpdateThemeWeekRequest is partial: absent fields keep their stored values.
type UpdateThemeWeekRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ResultURL   *string    `json:"result_url"`
	ImageURL    *string    `json:"image_url"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

func (req *UpdateThemeWeekRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&req.ResultURL, is.URL),
		validation.Field(&req.ImageURL, is.URL),
	)
}
