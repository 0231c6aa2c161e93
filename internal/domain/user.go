package domain

import "time"

// User is the full internal record, password hash included. Handlers must
// never serialize it directly; the public projection lives in the dto layer.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
