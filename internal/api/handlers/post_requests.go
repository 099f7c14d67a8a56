package handlers

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	apperrors "github.com/welldanyogia/webrana-posts-backend/internal/errors"
	"github.com/welldanyogia/webrana-posts-backend/internal/models"
	"github.com/welldanyogia/webrana-posts-backend/internal/services"
)

// CreatePostRequest represents the request body for creating a post.
// Pointer fields distinguish a missing or null value from an empty string.
type CreatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Author  *string `json:"author"`
}

// Validate rejects requests with a missing or null field
func (r CreatePostRequest) Validate() error {
	return apperrors.Validation(validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NotNil.Error("is required")),
		validation.Field(&r.Content, validation.NotNil.Error("is required")),
		validation.Field(&r.Author, validation.NotNil.Error("is required")),
	))
}

// ToCommand maps the request onto a create command. Call Validate first.
func (r CreatePostRequest) ToCommand() services.CreatePostCommand {
	return services.CreatePostCommand{
		Title:   *r.Title,
		Content: *r.Content,
		Author:  *r.Author,
	}
}

// UpdatePostRequest represents the request body for updating a post.
// There is no author field; an author key in the body is ignored.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Validate rejects requests with a missing or null field
func (r UpdatePostRequest) Validate() error {
	return apperrors.Validation(validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NotNil.Error("is required")),
		validation.Field(&r.Content, validation.NotNil.Error("is required")),
	))
}

// ToCommand maps the request onto an update command. Call Validate first.
func (r UpdatePostRequest) ToCommand() services.UpdatePostCommand {
	return services.UpdatePostCommand{
		Title:   *r.Title,
		Content: *r.Content,
	}
}

// PostResponse is the read view of a stored post
type PostResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPostResponse maps a stored post to its read view
func NewPostResponse(p *models.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PostListItem is the list view of a stored post
type PostListItem struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newPostList(posts []models.Post) []PostListItem {
	items := make([]PostListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, PostListItem{
			ID:        p.ID,
			Title:     p.Title,
			Author:    p.Author,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return items
}
