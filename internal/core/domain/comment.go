package domain

import (
	"errors"
	"time"
)

var ErrEmptyComment = errors.New("comment content is empty")

// Comment is attached to exactly one post and is immutable after creation.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
