package auth

import "time"

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner

	accessTTL time.Duration
}

type Config struct {
	AccessTTL time.Duration
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	accessTTL := cfg.AccessTTL
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	return &Service{
		users:     users,
		hasher:    hasher,
		signer:    signer,
		accessTTL: accessTTL,
	}
}

// AuthTokens is the common token output for handlers/DTO mapping.
type AuthTokens struct {
	AccessToken string
	ExpiresIn   int64  // seconds
	TokenType   string // "Bearer"
}
