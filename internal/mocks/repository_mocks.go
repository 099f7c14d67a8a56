// Package mocks contains testify mocks for the repository and service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/welldanyogia/webrana-posts-backend/internal/models"
)

// MockPostRepository implements repository.PostRepository
type MockPostRepository struct {
	mock.Mock
}

// Save saves a new post
func (m *MockPostRepository) Save(ctx context.Context, post *models.Post) (uint, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(uint), args.Error(1)
}

// FindByID retrieves a post by its ID
func (m *MockPostRepository) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

// FindAll retrieves every post
func (m *MockPostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

// FindAllDesc retrieves a page of posts
func (m *MockPostRepository) FindAllDesc(ctx context.Context, limit, offset int) ([]models.Post, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Post), args.Get(1).(int64), args.Error(2)
}

// Update overwrites title and content
func (m *MockPostRepository) Update(ctx context.Context, id uint, title, content string) error {
	args := m.Called(ctx, id, title, content)
	return args.Error(0)
}

// DeleteAll removes every post
func (m *MockPostRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
