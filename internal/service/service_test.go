package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shoplite/internal/auth"
	"shoplite/internal/repository"
	"shoplite/internal/repository/sqlite"
	"shoplite/internal/validate"
)

type testEnv struct {
	users    UserService
	auth     AuthService
	products ProductService
	tokens   *auth.TokenService
	userRepo repository.UserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	require.NoError(t, userRepo.Init(context.Background()))
	require.NoError(t, productRepo.Init(context.Background()))

	tokens := auth.NewTokenService("test-secret", time.Hour)
	users := NewUserService(userRepo, productRepo)

	return &testEnv{
		users:    users,
		auth:     NewAuthService(users, tokens),
		products: NewProductService(productRepo, userRepo),
		tokens:   tokens,
		userRepo: userRepo,
	}
}

func validUser(username, email string) validate.UserCreate {
	return validate.UserCreate{
		Username: username,
		Email:    email,
		Password: "secret1",
	}
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func i64Ptr(i int64) *int64     { return &i }
