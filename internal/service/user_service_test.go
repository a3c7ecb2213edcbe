package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplite/internal/domain"
	"shoplite/internal/validate"
)

func TestUserCreate_StripsPasswordHash(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user, err := env.users.Create(context.Background(), validUser("bob01", "bob@x.com"))
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "bob01", user.Username)
	assert.Equal(t, "bob@x.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	// the stored record keeps a bcrypt hash, never the plaintext
	stored, err := env.userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
}

func TestUserCreate_ValidationFailureWritesNothing(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.users.Create(context.Background(), validate.UserCreate{})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"Username is required",
		"Email is required",
		"Password is required",
	}, validationErr.Messages)

	users, err := env.users.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserCreate_DuplicateConflict(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	first, err := env.users.Create(context.Background(), validUser("bob01", "bob@x.com"))
	require.NoError(t, err)

	_, err = env.users.Create(context.Background(), validUser("bob01", "other@x.com"))
	assert.ErrorIs(t, err, domain.ErrUserExists)

	_, err = env.users.Create(context.Background(), validUser("other", "bob@x.com"))
	assert.ErrorIs(t, err, domain.ErrUserExists)

	// the first user is unaffected
	got, err := env.users.Get(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob01", got.Username)
}

func TestUserUpdate_PartialFields(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user, err := env.users.Create(context.Background(), validUser("bob01", "bob@x.com"))
	require.NoError(t, err)

	updated, err := env.users.Update(context.Background(), user.ID, validate.UserUpdate{
		Username: strPtr("bobby"),
	})
	require.NoError(t, err)
	assert.Equal(t, "bobby", updated.Username)
	assert.Equal(t, "bob@x.com", updated.Email)
}

func TestUserUpdate_RehashesPassword(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user, err := env.users.Create(context.Background(), validUser("bob01", "bob@x.com"))
	require.NoError(t, err)

	_, err = env.users.Update(context.Background(), user.ID, validate.UserUpdate{
		Password: strPtr("newsecret"),
	})
	require.NoError(t, err)

	_, _, err = env.auth.Login(context.Background(), "bob@x.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = env.auth.Login(context.Background(), "bob@x.com", "newsecret")
	assert.NoError(t, err)
}

func TestUserUpdate_ConflictWithOtherUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.users.Create(context.Background(), validUser("alice", "alice@x.com"))
	require.NoError(t, err)
	bob, err := env.users.Create(context.Background(), validUser("bob01", "bob@x.com"))
	require.NoError(t, err)

	_, err = env.users.Update(context.Background(), bob.ID, validate.UserUpdate{
		Email: strPtr("alice@x.com"),
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUserUpdate_KeepingOwnFieldsIsNotAConflict(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	bob, err := env.users.Create(context.Background(), validUser("bob01", "bob@x.com"))
	require.NoError(t, err)

	_, err = env.users.Update(context.Background(), bob.ID, validate.UserUpdate{
		Username: strPtr("bob01"),
		Email:    strPtr("bob@x.com"),
	})
	assert.NoError(t, err)
}

func TestUserGet_NotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.users.Get(context.Background(), 999)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "User", notFound.Kind)
	assert.EqualValues(t, 999, notFound.ID)
}

func TestUserDelete_CascadesToProducts(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user, err := env.users.Create(context.Background(), validUser("bob01", "bob@x.com"))
	require.NoError(t, err)

	product, err := env.products.Create(context.Background(), validate.ProductCreate{
		Name:        "Widget",
		Description: "d",
		Price:       f64Ptr(9.99),
	}, user.ID)
	require.NoError(t, err)

	require.NoError(t, env.users.Delete(context.Background(), user.ID))

	_, err = env.products.Get(context.Background(), product.ID)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestUserList_IncludesProducts(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user, err := env.users.Create(context.Background(), validUser("bob01", "bob@x.com"))
	require.NoError(t, err)
	_, err = env.products.Create(context.Background(), validate.ProductCreate{
		Name:        "Widget",
		Description: "d",
		Price:       f64Ptr(9.99),
	}, user.ID)
	require.NoError(t, err)

	users, err := env.users.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Len(t, users[0].Products, 1)
	assert.Equal(t, "Widget", users[0].Products[0].Name)
	assert.Empty(t, users[0].PasswordHash)
}
