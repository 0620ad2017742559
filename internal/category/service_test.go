package category

import (
	"context"
	"errors"
	"testing"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateCategory(ctx context.Context, name string) (*Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) UpdateCategory(ctx context.Context, id uint, name string) (*Category, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) DeleteCategory(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) GetCategory(ctx context.Context, id uint) (*Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) ListCategories(ctx context.Context) ([]*Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Category), args.Error(1)
}

var (
	admin = utils.Caller{ID: 1, Role: utils.RoleAdmin}
	plain = utils.Caller{ID: 2, Role: utils.RoleUser}
)

// --- Tests ---

func TestService_CreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		expected := &Category{ID: 1, Name: "Electronics"}
		mockRepo.On("CreateCategory", ctx, "Electronics").Return(expected, nil)

		c, err := svc.CreateCategory(ctx, admin, "  Electronics  ")
		assert.NoError(t, err)
		assert.Equal(t, expected, c)
		mockRepo.AssertExpectations(t)
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.CreateCategory(ctx, plain, "Electronics")
		assert.True(t, apperr.IsKind(err, apperr.Forbidden))
	})

	t.Run("EmptyName", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.CreateCategory(ctx, admin, "   ")
		assert.True(t, apperr.IsKind(err, apperr.Invalid))
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("CreateCategory", ctx, "Electronics").Return(nil, errors.New("db error"))
		_, err := svc.CreateCategory(ctx, admin, "Electronics")
		assert.Error(t, err)
	})
}

func TestService_UpdateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		expected := &Category{ID: 1, Name: "Groceries"}
		mockRepo.On("UpdateCategory", ctx, uint(1), "Groceries").Return(expected, nil)

		c, err := svc.UpdateCategory(ctx, admin, 1, "Groceries")
		assert.NoError(t, err)
		assert.Equal(t, expected, c)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("UpdateCategory", ctx, uint(99), "Groceries").
			Return(nil, apperr.New(apperr.NotFound, "category not found"))

		_, err := svc.UpdateCategory(ctx, admin, 99, "Groceries")
		assert.True(t, apperr.IsKind(err, apperr.NotFound))
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.UpdateCategory(ctx, plain, 1, "Groceries")
		assert.True(t, apperr.IsKind(err, apperr.Forbidden))
	})
}

func TestService_DeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("DeleteCategory", ctx, uint(1)).Return(nil)
		assert.NoError(t, svc.DeleteCategory(ctx, admin, 1))
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		err := svc.DeleteCategory(ctx, plain, 1)
		assert.True(t, apperr.IsKind(err, apperr.Forbidden))
	})
}

func TestService_GetAllCategories(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	mockRepo.On("ListCategories", ctx).Return([]*Category{{ID: 1, Name: "Electronics"}}, nil)

	categories, err := svc.GetAllCategories(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 1)
}
