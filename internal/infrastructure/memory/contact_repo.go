package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mgeraldo/contact-book/internal/application/contacts"
	"github.com/mgeraldo/contact-book/internal/domain"
)

type ContactRepo struct {
	mu    sync.RWMutex
	byID  map[string]domain.Contact
	order []string // insertion order, stands in for ORDER BY created_at
}

func NewContactRepo() *ContactRepo {
	return &ContactRepo{byID: make(map[string]domain.Contact)}
}

func (r *ContactRepo) Create(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return c, nil
}

func (r *ContactRepo) List(ctx context.Context, ownerID string, f contacts.Filter) ([]domain.Contact, error) {
	name := strings.ToLower(strings.TrimSpace(f.Name))
	email := strings.ToLower(strings.TrimSpace(f.Email))

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Contact
	for _, id := range r.order {
		c, ok := r.byID[id]
		if !ok || c.OwnerID != ownerID {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(c.Name), name) {
			continue
		}
		if email != "" && !strings.Contains(strings.ToLower(c.Email), email) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// get reports not-found for absent and not-owned records alike.
func (r *ContactRepo) get(id, ownerID string) (domain.Contact, error) {
	c, ok := r.byID[id]
	if !ok || c.OwnerID != ownerID {
		return domain.Contact{}, domain.ErrContactNotFound()
	}
	return c, nil
}

func (r *ContactRepo) GetByID(ctx context.Context, id, ownerID string) (domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.get(id, ownerID)
}

func (r *ContactRepo) Replace(ctx context.Context, id, ownerID string, c domain.Contact) (domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, err := r.get(id, ownerID)
	if err != nil {
		return domain.Contact{}, err
	}
	cur.Name = c.Name
	cur.Email = c.Email
	cur.Phone = c.Phone
	cur.UpdatedAt = time.Now().UTC()
	r.byID[id] = cur
	return cur, nil
}

func (r *ContactRepo) Update(ctx context.Context, id, ownerID string, p contacts.Patch) (domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, err := r.get(id, ownerID)
	if err != nil {
		return domain.Contact{}, err
	}
	if p.IsZero() {
		return cur, nil
	}
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Email != nil {
		cur.Email = *p.Email
	}
	if p.Phone != nil {
		cur.Phone = *p.Phone
	}
	cur.UpdatedAt = time.Now().UTC()
	r.byID[id] = cur
	return cur, nil
}

func (r *ContactRepo) Delete(ctx context.Context, id, ownerID string) (domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, err := r.get(id, ownerID)
	if err != nil {
		return domain.Contact{}, err
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return cur, nil
}
