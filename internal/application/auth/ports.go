package auth

import (
	"context"
	"time"

	"github.com/mgeraldo/contact-book/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the auth service needs, not HOW it's stored.

Create must enforce email uniqueness at the store level (not only a
pre-check) so that two concurrent registrations of the same address
cannot both succeed.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	UserID string
	Exp    time.Time
}

type TokenSigner interface {
	SignAccessToken(userID string, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}
