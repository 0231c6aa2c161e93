package dto

import (
	"time"

	"github.com/mgeraldo/contact-book/internal/domain"
)

type ContactView struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewContactView(c domain.Contact) ContactView {
	return ContactView{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewContactViews(cs []domain.Contact) []ContactView {
	out := make([]ContactView, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewContactView(c))
	}
	return out
}
