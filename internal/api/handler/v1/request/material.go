package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateMaterialRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	StudentName  string `json:"student_name"`
	MaterialType string `json:"material_type"`
	URL          string `json:"url"`
	IsWinner     bool   `json:"is_winner"`
	ThemeWeekID  string `json:"theme_week_id"`
}

func (req *CreateMaterialRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.StudentName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.MaterialType, validation.Required, validation.Length(1, 20)),
		validation.Field(&req.URL, validation.Required, is.URL),
		validation.Field(&req.ThemeWeekID, validation.Required, is.UUIDv4),
	)
}

// UpdateMaterialRequest is partial: absent fields keep their stored values.
type UpdateMaterialRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	StudentName  *string `json:"student_name"`
	MaterialType *string `json:"material_type"`
	URL          *string `json:"url"`
	IsWinner     *bool   `json:"is_winner"`
	ThemeWeekID  *string `json:"theme_week_id"`
}

func (req *UpdateMaterialRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&req.MaterialType, validation.NilOrNotEmpty, validation.Length(1, 20)),
		validation.Field(&req.URL, is.URL),
		validation.Field(&req.ThemeWeekID, is.UUIDv4),
	)
}
