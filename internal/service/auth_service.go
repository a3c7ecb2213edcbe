package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"shoplite/internal/auth"
	"shoplite/internal/domain"
	"shoplite/internal/repository"
	"shoplite/internal/validate"
)

// AuthService orchestrates registration and login. Both mint a session
// token on success; both leave no stored state behind on failure.
type AuthService interface {
	Register(ctx context.Context, req validate.UserCreate) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type authService struct {
	users  UserService
	tokens *auth.TokenService
}

func NewAuthService(users UserService, tokens *auth.TokenService) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, req validate.UserCreate) (*domain.User, string, error) {
	user, err := s.users.Create(ctx, req)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// unknown email and wrong password are indistinguishable to the caller
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return sanitizeUser(user), token, nil
}
