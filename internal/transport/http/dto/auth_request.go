package dto

import (
	"strings"

	"github.com/mgeraldo/contact-book/internal/domain"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)

	if r.Name == "" {
		return domain.ErrMissingField("name")
	}
	if r.Email == "" {
		return domain.ErrMissingField("email")
	}
	if r.Password == "" {
		return domain.ErrMissingField("password")
	}
	if !strings.Contains(r.Email, "@") {
		return domain.ErrInvalidField("email", "invalid format")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)

	if r.Email == "" {
		return domain.ErrMissingField("email")
	}
	if r.Password == "" {
		return domain.ErrMissingField("password")
	}
	return nil
}
