package domain

import "time"

// Product is a catalog record owned by exactly one user. Only the owner
// may mutate or delete it.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Stock       int64
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Owner       *User
}
