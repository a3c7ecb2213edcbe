package repository

import (
	"context"

	"shoplite/internal/domain"
)

// UserRepository defines persistence operations for User entities.
// Username and email carry unique constraints; Create and Update surface
// a violation as domain.ErrUserExists so concurrent writers cannot both
// succeed.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByUsernameOrEmail matches either column; used for uniqueness
	// checks before a write.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}
