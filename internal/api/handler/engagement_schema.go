package handler

import "time"

// messageResponse mirrors the legacy wire contract: like registration and a
// few not-found cases answer with a "message" field instead of "error".
type messageResponse struct {
	Message string `json:"message"`
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type likeCountResponse struct {
	LikeCount int64 `json:"likeCount"`
}

type likeUsersResponse struct {
	Likes []string `json:"likes"`
}

type totalLikesResponse struct {
	TotalLikesCount int64 `json:"totalLikesCount"`
}

type totalCommentsResponse struct {
	TotalCommentsCount int64 `json:"totalCommentsCount"`
}
