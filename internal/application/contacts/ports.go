package contacts

import (
	"context"

	"github.com/mgeraldo/contact-book/internal/domain"
)

/*
ContactRepo
-----------
Persistence port for contacts. Every operation that touches an existing
record takes the owner id and must conjoin it with the id filter: a record
owned by someone else is reported exactly like a record that does not
exist. There is no unscoped variant.
*/
type ContactRepo interface {
	Create(ctx context.Context, c domain.Contact) (domain.Contact, error)
	List(ctx context.Context, ownerID string, f Filter) ([]domain.Contact, error)
	GetByID(ctx context.Context, id, ownerID string) (domain.Contact, error)
	Replace(ctx context.Context, id, ownerID string, c domain.Contact) (domain.Contact, error)
	Update(ctx context.Context, id, ownerID string, p Patch) (domain.Contact, error)
	Delete(ctx context.Context, id, ownerID string) (domain.Contact, error)
}

// Filter narrows List results. Both terms are case-insensitive substring
// matches, ANDed with the implicit owner predicate.
type Filter struct {
	Name  string
	Email string
}

// Patch is a merge-style partial update. Nil means "leave unchanged".
// Owner and timestamps are deliberately absent: they are not client data.
type Patch struct {
	Name  *string
	Email *string
	Phone *string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil
}
