package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mgeraldo/contact-book/internal/domain"
)

// Register creates a user and returns its public record. The returned user
// never carries the password hash, regardless of what the store echoes
// back; handlers must not be trusted to strip it.
//
// Hashing happens before any repo call and under no lock: it is the slow,
// CPU-bound part and must not serialize unrelated requests.
func (s *Service) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return domain.User{}, domain.ErrMissingField("name")
	}
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return domain.User{}, domain.ErrMissingField("password")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}

	created.PasswordHash = ""
	return created, nil
}
