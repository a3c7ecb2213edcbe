package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shoplite/internal/domain"
	"shoplite/internal/repository"
	"shoplite/internal/validate"
)

// UserService is the user directory: it owns the User lifecycle and
// enforces username/email uniqueness. Every record it returns has the
// password hash stripped, except FindByEmail which exists for credential
// verification.
type UserService interface {
	Create(ctx context.Context, req validate.UserCreate) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, req validate.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	// FindByEmail returns the record including its password hash. Callers
	// other than the auth flow must not use it.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userService struct {
	users    repository.UserRepository
	products repository.ProductRepository
}

func NewUserService(users repository.UserRepository, products repository.ProductRepository) UserService {
	return &userService{users: users, products: products}
}

func (s *userService) Create(ctx context.Context, req validate.UserCreate) (*domain.User, error) {
	if msgs := req.Validate(); len(msgs) > 0 {
		return nil, &domain.ValidationError{Messages: msgs}
	}

	existing, err := s.users.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	// the unique constraints catch a registration racing past the check
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	byOwner := make(map[int64][]domain.Product, len(users))
	for _, p := range products {
		byOwner[p.UserID] = append(byOwner[p.UserID], p)
	}

	out := make([]domain.User, len(users))
	for i := range users {
		u := users[i]
		u.Products = byOwner[u.ID]
		out[i] = *sanitizeUser(&u)
	}
	return out, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewUserNotFound(id)
		}
		return nil, err
	}

	products, err := s.products.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Products = products

	return sanitizeUser(user), nil
}

func (s *userService) Update(ctx context.Context, id int64, req validate.UserUpdate) (*domain.User, error) {
	if msgs := req.Validate(); len(msgs) > 0 {
		return nil, &domain.ValidationError{Messages: msgs}
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewUserNotFound(id)
		}
		return nil, err
	}

	if req.Username != nil || req.Email != nil {
		var username, email string
		if req.Username != nil {
			username = *req.Username
		}
		if req.Email != nil {
			email = *req.Email
		}
		duplicate, err := s.users.FindByUsernameOrEmail(ctx, username, email)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if duplicate != nil && duplicate.ID != id {
			return nil, domain.ErrUserExists
		}
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewUserNotFound(id)
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewUserNotFound(id)
		}
		return err
	}
	return nil
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// sanitizeUser strips the password hash before a record leaves the
// service layer.
func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	sanitized := *user
	sanitized.PasswordHash = ""
	return &sanitized
}
