package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// No complexity policy on purpose: accounts predating this backend carry
// short passwords and must keep working.
func (req *RegisterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(1, 80)),
		validation.Field(&req.Password, validation.Required, validation.Length(1, 128)),
	)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
