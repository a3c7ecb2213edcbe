package service

import (
	"context"
	"errors"
	"math"

	"shoplite/internal/domain"
	"shoplite/internal/repository"
	"shoplite/internal/validate"
)

// ProductService is the product registry. Every product belongs to
// exactly one owner; only the owner may mutate or delete it. Ownership
// mismatches surface as not-found so callers cannot tell a foreign record
// from a missing one.
type ProductService interface {
	Create(ctx context.Context, req validate.ProductCreate, ownerID int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Product, error)
	Update(ctx context.Context, id int64, req validate.ProductUpdate, callerID int64) (*domain.Product, error)
	Delete(ctx context.Context, id int64, callerID int64) error
}

type productService struct {
	products repository.ProductRepository
	users    repository.UserRepository
}

func NewProductService(products repository.ProductRepository, users repository.UserRepository) ProductService {
	return &productService{products: products, users: users}
}

func (s *productService) Create(ctx context.Context, req validate.ProductCreate, ownerID int64) (*domain.Product, error) {
	if msgs := req.Validate(); len(msgs) > 0 {
		return nil, &domain.ValidationError{Messages: msgs}
	}

	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       roundPrice(*req.Price),
		UserID:      ownerID,
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if _, err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.attachOwners(ctx, products)
}

func (s *productService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewProductNotFound(id)
		}
		return nil, err
	}

	if err := s.attachOwner(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Product, error) {
	products, err := s.products.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.attachOwners(ctx, products)
}

func (s *productService) Update(ctx context.Context, id int64, req validate.ProductUpdate, callerID int64) (*domain.Product, error) {
	if msgs := req.Validate(); len(msgs) > 0 {
		return nil, &domain.ValidationError{Messages: msgs}
	}

	product, err := s.loadOwned(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = roundPrice(*req.Price)
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.products.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewProductNotFound(id)
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id int64, callerID int64) error {
	if _, err := s.loadOwned(ctx, id, callerID); err != nil {
		return err
	}

	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewProductNotFound(id)
		}
		return err
	}
	return nil
}

// loadOwned fetches a product and enforces the owner-only mutation rule.
// A record owned by someone else reads as not found.
func (s *productService) loadOwned(ctx context.Context, id, callerID int64) (*domain.Product, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewProductNotFound(id)
		}
		return nil, err
	}
	if product.UserID != callerID {
		return nil, domain.NewProductNotFound(id)
	}
	return product, nil
}

func (s *productService) attachOwner(ctx context.Context, product *domain.Product) error {
	owner, err := s.users.GetByID(ctx, product.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	product.Owner = sanitizeUser(owner)
	return nil
}

func (s *productService) attachOwners(ctx context.Context, products []domain.Product) ([]domain.Product, error) {
	owners := make(map[int64]*domain.User)
	for i := range products {
		owner, ok := owners[products[i].UserID]
		if !ok {
			loaded, err := s.users.GetByID(ctx, products[i].UserID)
			if err != nil {
				if !errors.Is(err, repository.ErrNotFound) {
					return nil, err
				}
				loaded = nil
			}
			owner = sanitizeUser(loaded)
			owners[products[i].UserID] = owner
		}
		products[i].Owner = owner
	}
	return products, nil
}

// roundPrice keeps prices at a fixed 2 decimal scale.
func roundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}
