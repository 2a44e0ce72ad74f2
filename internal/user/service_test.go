package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, email, password, role string) (User, error) {
	args := m.Called(ctx, email, password, role)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(email string) (User, error) {
	args := m.Called(email)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, "a@b.com", mock.AnythingOfType("string"), "USER").
			Return(User{ID: 1, Email: "a@b.com", Role: RoleUser}, nil)

		token, u, err := svc.Register(ctx, "a@b.com", "rahasia")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 1, u.ID)
		repo.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, "a@b.com", mock.AnythingOfType("string"), "USER").
			Return(User{}, errors.New(`duplicate key value violates unique constraint "users_email_key"`))

		_, _, err := svc.Register(ctx, "a@b.com", "rahasia")
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	hash, err := HashPassword("rahasia")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", "a@b.com").
			Return(User{ID: 1, Email: "a@b.com", Password: hash, Role: RoleUser}, nil)

		token, u, err := svc.Login(ctx, "a@b.com", "rahasia")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "a@b.com", u.Email)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", "a@b.com").
			Return(User{ID: 1, Email: "a@b.com", Password: hash}, nil)

		_, _, err := svc.Login(ctx, "a@b.com", "salah")
		assert.Error(t, err)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", "x@y.com").
			Return(User{}, errors.New("sql: no rows in result set"))

		_, _, err := svc.Login(ctx, "x@y.com", "rahasia")
		assert.Error(t, err)
		// The caller must not learn whether the email exists.
		assert.Equal(t, "invalid email or password", err.Error())
	})
}
