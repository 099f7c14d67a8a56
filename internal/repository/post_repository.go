package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/welldanyogia/webrana-posts-backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	Save(ctx context.Context, post *models.Post) (uint, error)
	FindByID(ctx context.Context, id uint) (*models.Post, error)
	FindAll(ctx context.Context) ([]models.Post, error)
	FindAllDesc(ctx context.Context, limit, offset int) ([]models.Post, int64, error)
	Update(ctx context.Context, id uint, title, content string) error
	DeleteAll(ctx context.Context) error
}

// postRepository implements PostRepository using GORM
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository instance
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Save inserts a new post and returns the identifier assigned by the database
func (r *postRepository) Save(ctx context.Context, post *models.Post) (uint, error) {
	result := r.db.WithContext(ctx).Create(post)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to save post: %w: %w", ErrStorage, result.Error)
	}
	return post.ID, nil
}

// FindByID retrieves a post by its ID
func (r *postRepository) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	result := r.db.WithContext(ctx).First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post by ID: %w: %w", ErrStorage, result.Error)
	}
	return &post, nil
}

// FindAll retrieves every post in insertion order
func (r *postRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	result := r.db.WithContext(ctx).Order("id ASC").Find(&posts)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list posts: %w: %w", ErrStorage, result.Error)
	}
	return posts, nil
}

// FindAllDesc retrieves a page of posts, newest first, with the total count
func (r *postRepository) FindAllDesc(ctx context.Context, limit, offset int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w: %w", ErrStorage, err)
	}

	result := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Offset(offset).Find(&posts)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w: %w", ErrStorage, result.Error)
	}
	return posts, total, nil
}

// Update overwrites title and content of an existing post in one statement
func (r *postRepository) Update(ctx context.Context, id uint, title, content string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":   title,
			"content": content,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w: %w", ErrStorage, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every post. Used for fixture cleanup only.
func (r *postRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Post{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete posts: %w: %w", ErrStorage, result.Error)
	}
	return nil
}
