package models

import (
	"time"
)

// Post represents a blog post record
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null;size:500" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"not null;size:255" json:"author"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for Post
func (Post) TableName() string {
	return "posts"
}

// NewPost builds an unsaved post. The ID is assigned by the store.
func NewPost(title, content, author string) *Post {
	return &Post{
		Title:   title,
		Content: content,
		Author:  author,
	}
}
