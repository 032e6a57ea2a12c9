package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

func (req *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(1, 80)),
		validation.Field(&req.Password, validation.Required, validation.Length(1, 128)),
	)
}

// UpdateUserRequest is partial: absent fields keep their stored values.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	IsAdmin  *bool   `json:"is_admin"`
}

func (req *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.NilOrNotEmpty, validation.Length(1, 80)),
		validation.Field(&req.Password, validation.NilOrNotEmpty, validation.Length(1, 128)),
	)
}
