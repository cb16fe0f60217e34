package auth

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterRequest carries the write-once registration profile
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	City     string `json:"city" validate:"omitempty,max=255"`
	Country  string `json:"country" validate:"omitempty,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginRequest authenticates against the single shared admin credential
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *RegisterRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid registration data: %w", err)
	}
	return nil
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("email and password are required")
	}
	return nil
}

func (r *AdminLoginRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("email and password are required")
	}
	return nil
}
