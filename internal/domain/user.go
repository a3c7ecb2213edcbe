package domain

import "time"

// User represents a registered account. PasswordHash is write-only: it is
// set by the user service and never leaves it.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Products     []Product
}
