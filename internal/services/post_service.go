package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/welldanyogia/webrana-posts-backend/internal/auth"
	"github.com/welldanyogia/webrana-posts-backend/internal/models"
	"github.com/welldanyogia/webrana-posts-backend/internal/repository"
)

// PostService defines the create/update/read operations on posts
type PostService interface {
	// Create persists a new post and returns its identifier. Requires RoleUser.
	Create(ctx context.Context, cmd CreatePostCommand) (uint, error)

	// Update overwrites title and content of post id and returns id. Requires RoleUser.
	Update(ctx context.Context, id uint, cmd UpdatePostCommand) (uint, error)

	// FindByID returns a single post
	FindByID(ctx context.Context, id uint) (*models.Post, error)

	// List returns a page of posts, newest first, with the total count
	List(ctx context.Context, limit, offset int) ([]models.Post, int64, error)
}

// postService implements PostService
type postService struct {
	repo   repository.PostRepository
	logger *slog.Logger
}

// NewPostService creates a new PostService instance
func NewPostService(repo repository.PostRepository, logger *slog.Logger) PostService {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:   repo,
		logger: logger,
	}
}

// Create maps the command to a record and saves it
func (s *postService) Create(ctx context.Context, cmd CreatePostCommand) (uint, error) {
	if err := auth.Authorize(ctx, auth.RoleUser); err != nil {
		return 0, err
	}

	id, err := s.repo.Save(ctx, cmd.ToPost())
	if err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}

	s.logger.Info("post created",
		slog.Uint64("post_id", uint64(id)),
		slog.String("subject", auth.FromContext(ctx).Subject),
	)
	return id, nil
}

// Update applies the command to an existing post
func (s *postService) Update(ctx context.Context, id uint, cmd UpdatePostCommand) (uint, error) {
	if err := auth.Authorize(ctx, auth.RoleUser); err != nil {
		return 0, err
	}

	if err := s.repo.Update(ctx, id, cmd.Title, cmd.Content); err != nil {
		return 0, fmt.Errorf("update post %d: %w", id, err)
	}

	s.logger.Info("post updated",
		slog.Uint64("post_id", uint64(id)),
		slog.String("subject", auth.FromContext(ctx).Subject),
	)
	return id, nil
}

// FindByID returns a single post
func (s *postService) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find post %d: %w", id, err)
	}
	return post, nil
}

// List returns posts newest first
func (s *postService) List(ctx context.Context, limit, offset int) ([]models.Post, int64, error) {
	posts, total, err := s.repo.FindAllDesc(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	s.logger.Debug("posts listed", slog.Int("count", len(posts)), slog.Int64("total", total))
	return posts, total, nil
}
