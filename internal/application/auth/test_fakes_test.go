package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/mgeraldo/contact-book/internal/domain"
)

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	byEmail map[string]domain.User

	// injected errors (if set, method returns error)
	getByEmailErr error
	createErr     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]domain.User{}}
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, exists := f.byEmail[u.Email]; exists {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	f.byEmail[u.Email] = u
	return u, nil
}

type fakeHasher struct {
	hashErr    error
	compareErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + password, nil
}

func (f *fakeHasher) Compare(hash string, password string) error {
	if f.compareErr != nil {
		return f.compareErr
	}
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeSigner struct {
	signErr error
}

func (f *fakeSigner) SignAccessToken(userID string, ttl time.Duration) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	return fmt.Sprintf("token-for-%s", userID), nil
}

func (f *fakeSigner) VerifyAccessToken(token string) (TokenClaims, error) {
	return TokenClaims{}, errors.New("not implemented in fake")
}

func newTestService(repo *fakeUserRepo, h *fakeHasher, s *fakeSigner) *Service {
	return NewService(repo, h, s, Config{AccessTTL: 15 * time.Minute})
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected %s, got %v", code, err)
	}
}
