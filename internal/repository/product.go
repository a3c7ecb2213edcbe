package repository

import (
	"context"

	"shoplite/internal/domain"
)

// ProductRepository exposes persistence operations for Product records.
// Rows are stored flat; owner annotation happens in the service layer.
type ProductRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, product *domain.Product) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
}
