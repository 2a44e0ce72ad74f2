package menu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dapuribu-be/internal/utils"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, opts ListOptions) ([]Menu, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Menu), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (Menu, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Menu), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input MenuInput) (Menu, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(Menu), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, input MenuInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *MockRepository) UpdateImageURL(ctx context.Context, id int64, imageURL string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("NullCoalescesEmptyOptionals", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		input := MenuInput{
			Name:        "  Nasi Kuning ",
			Price:       18000,
			Description: utils.StrPtr(""),
			Category:    utils.StrPtr(""),
			ImageURL:    utils.StrPtr(""),
			Available:   true,
		}

		repo.On("Create", ctx, mock.MatchedBy(func(in MenuInput) bool {
			return in.Name == "Nasi Kuning" &&
				in.Description == nil && in.Category == nil && in.ImageURL == nil
		})).Return(Menu{ID: 1, Name: "Nasi Kuning"}, nil)

		m, err := svc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, int64(1), m.ID)
		repo.AssertExpectations(t)
	})

	t.Run("EmptyName", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(ctx, MenuInput{Name: "   ", Price: 1000})
		assert.ErrorIs(t, err, ErrNameRequired)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("NegativePrice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(ctx, MenuInput{Name: "Bakso", Price: -1})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestService_List_NormalizesOrder(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("List", ctx, ListOptions{OrderBy: "id"}).Return([]Menu{}, nil)

	_, err := svc.List(ctx, ListOptions{OrderBy: "price; DROP TABLE menus"})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Update(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	input := MenuInput{Name: "Bakso", Price: 15000, Available: true}
	repo.On("Update", ctx, int64(3), input).Return(ErrMenuNotFound)

	err := svc.Update(ctx, 3, input)
	assert.ErrorIs(t, err, ErrMenuNotFound)
}
