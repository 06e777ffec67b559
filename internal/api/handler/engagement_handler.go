package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghive/blog-backend/internal/core/domain"
	"github.com/bloghive/blog-backend/internal/core/ports"
)

// EngagementHandler handles likes and comments on blog posts.
type EngagementHandler struct {
	service ports.EngagementService
}

func NewEngagementHandler(service ports.EngagementService) *EngagementHandler {
	return &EngagementHandler{service: service}
}

// AddLike handles POST /blogs/:id/like. Liking twice is a no-op that still
// reports success, so the endpoint is safe to retry.
//
// @Summary      Like a blog post
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Post id"
// @Success      201  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /blogs/{id}/like [post]
func (h *EngagementHandler) AddLike(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if _, err := h.service.AddLike(c.Request().Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Post doesn't exist!"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "Like added"})
}

// CountLikes handles GET /blogs/:id/likes.
//
// @Summary      Get the like count for a blog post
// @Tags         likes
// @Produce      json
// @Param        id  path      string  true  "Post id"
// @Success      200  {object}  likeCountResponse
// @Failure      404  {object}  errorResponse
// @Router       /blogs/{id}/likes [get]
func (h *EngagementHandler) CountLikes(c echo.Context) error {
	count, err := h.service.CountLikes(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Post not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, likeCountResponse{LikeCount: count})
}

// ListLikeUsers handles GET /blogs/:id/likeusers. A post with zero likes
// answers with an empty list, not 404.
//
// @Summary      Get users who liked a blog post
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Post id"
// @Success      200  {object}  likeUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /blogs/{id}/likeusers [get]
func (h *EngagementHandler) ListLikeUsers(c echo.Context) error {
	users, err := h.service.ListLikeUsers(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Post not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, likeUsersResponse{Likes: users})
}

// TotalLikes handles GET /blogs/likes/count.
//
// @Summary      Get the total like count across all posts
// @Tags         likes
// @Produce      json
// @Success      200  {object}  totalLikesResponse
// @Router       /blogs/likes/count [get]
func (h *EngagementHandler) TotalLikes(c echo.Context) error {
	count, err := h.service.TotalLikeCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, totalLikesResponse{TotalLikesCount: count})
}

// AddComment handles POST /blogs/:id/comments.
//
// @Summary      Comment on a blog post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      addCommentRequest  true  "Comment content"
// @Success      201   {object}  commentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /blogs/{id}/comments [post]
func (h *EngagementHandler) AddComment(c echo.Context) error {
	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	comment, err := h.service.AddComment(c.Request().Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPostNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Post doesn't exist!"})
		case errors.Is(err, domain.ErrEmptyComment):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "content is required"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// ListComments handles GET /blogs/:id/comments, ordered oldest first.
//
// @Summary      List comments on a blog post
// @Tags         comments
// @Produce      json
// @Param        id  path      string  true  "Post id"
// @Success      200  {array}   commentResponse
// @Failure      404  {object}  messageResponse
// @Router       /blogs/{id}/comments [get]
func (h *EngagementHandler) ListComments(c echo.Context) error {
	comments, err := h.service.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Post not found"})
		}
		return err
	}

	resp := make([]commentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, toCommentResponse(&comments[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// TotalComments handles GET /blogs/comments/count.
//
// @Summary      Get the total comment count across all posts
// @Tags         comments
// @Produce      json
// @Success      200  {object}  totalCommentsResponse
// @Router       /blogs/comments/count [get]
func (h *EngagementHandler) TotalComments(c echo.Context) error {
	count, err := h.service.TotalCommentCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, totalCommentsResponse{TotalCommentsCount: count})
}

func toCommentResponse(cm *domain.Comment) commentResponse {
	return commentResponse{
		ID:        cm.ID,
		PostID:    cm.PostID,
		UserID:    cm.UserID,
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
	}
}
