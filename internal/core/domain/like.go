package domain

import (
	"errors"
	"time"
)

var ErrAlreadyLiked = errors.New("post already liked by user")

// Like records that a user liked a post. The (PostID, UserID) pair is
// unique: a user likes a given post at most once.
type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
