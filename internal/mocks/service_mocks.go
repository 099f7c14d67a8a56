package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/welldanyogia/webrana-posts-backend/internal/models"
	"github.com/welldanyogia/webrana-posts-backend/internal/services"
)

// MockPostService implements services.PostService
type MockPostService struct {
	mock.Mock
}

// Create creates a post
func (m *MockPostService) Create(ctx context.Context, cmd services.CreatePostCommand) (uint, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(uint), args.Error(1)
}

// Update updates a post
func (m *MockPostService) Update(ctx context.Context, id uint, cmd services.UpdatePostCommand) (uint, error) {
	args := m.Called(ctx, id, cmd)
	return args.Get(0).(uint), args.Error(1)
}

// FindByID retrieves a post
func (m *MockPostService) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

// List retrieves a page of posts
func (m *MockPostService) List(ctx context.Context, limit, offset int) ([]models.Post, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Post), args.Get(1).(int64), args.Error(2)
}
