package dto

import (
	"time"

	"github.com/mgeraldo/contact-book/internal/domain"
)

// UserView is the standard user payload. The password hash never appears
// here, by construction.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// TokensView is the standard access token payload.
type TokensView struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // "Bearer"
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// RegisterData is returned by register. No token: the client logs in next.
type RegisterData struct {
	User UserView `json:"user"`
}

// LoginData is returned by login.
type LoginData struct {
	Tokens TokensView `json:"tokens"`
}
