package services

import (
	"github.com/welldanyogia/webrana-posts-backend/internal/models"
)

// CreatePostCommand requests a new post
type CreatePostCommand struct {
	Title   string
	Content string
	Author  string
}

// ToPost builds the unsaved record for the command
func (c CreatePostCommand) ToPost() *models.Post {
	return models.NewPost(c.Title, c.Content, c.Author)
}

// UpdatePostCommand overwrites the title and content of an existing post.
// It has no author field: authorship is fixed at creation.
type UpdatePostCommand struct {
	Title   string
	Content string
}
