// Package memory provides mutex-guarded in-memory repositories. They back
// the test suites and make the server runnable without a database.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mgeraldo/contact-book/internal/domain"
)

type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string // lower(email) -> id
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[key]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return r.byID[id], nil
}

// Create inserts the user. The duplicate check and the insert happen under
// one lock, so a concurrent register on the same email has exactly one
// winner.
func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	key := strings.ToLower(strings.TrimSpace(u.Email))
	u.Email = key

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[key]; exists {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.byID[u.ID] = u
	r.byEmail[key] = u.ID
	return u, nil
}
