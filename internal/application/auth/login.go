package auth

import (
	"context"
	"strings"

	"github.com/mgeraldo/contact-book/internal/domain"
)

// Login authenticates a user and issues an access token.
// IMPORTANT: must not leak whether the email exists (avoid user enumeration).
func (s *Service) Login(ctx context.Context, email, password string) (AuthTokens, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" {
		return AuthTokens{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return AuthTokens{}, domain.ErrMissingField("password")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Hide not-found behind invalid credentials. Storage faults keep
		// their own kind: an outage is not a wrong password.
		if domain.Is(err, "user_not_found") {
			return AuthTokens{}, domain.ErrInvalidCredentials()
		}
		return AuthTokens{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return AuthTokens{}, domain.ErrInvalidCredentials()
	}

	access, err := s.signer.SignAccessToken(u.ID, s.accessTTL)
	if err != nil {
		return AuthTokens{}, domain.ErrTokenSignFailed(err)
	}

	return AuthTokens{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}
