package domain

import "time"

// Contact belongs to exactly one user. OwnerID is set from the verified
// caller identity at creation and is never writable through the API.
type Contact struct {
	ID        string
	OwnerID   string
	Name      string
	Email     string // optional, empty when unset
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
