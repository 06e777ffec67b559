package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghive/blog-backend/internal/core/domain"
	"github.com/bloghive/blog-backend/internal/core/ports"
)

// PostHandler handles HTTP requests for blog post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /blogs.
//
// @Summary      Create a new blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /blogs [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.Request().Context(), ports.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		AuthorID: userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// Get handles GET /blogs/:id.
//
// @Summary      Get a blog post by id
// @Tags         blogs
// @Produce      json
// @Param        id  path      string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  errorResponse
// @Router       /blogs/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Post not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// List handles GET /blogs.
//
// @Summary      List all blog posts
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  postResponse
// @Router       /blogs [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]postResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostResponse(&posts[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PATCH /blogs/:id.
//
// @Summary      Update a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  postResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /blogs/{id} [patch]
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	post, err := h.service.UpdatePost(c.Request().Context(), ports.UpdatePostInput{
		PostID:    c.Param("id"),
		Title:     req.Title,
		Content:   req.Content,
		Author:    req.Author,
		ActorID:   userID,
		ActorRole: role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPostNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Post doesn't exist!"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /blogs/:id.
//
// @Summary      Delete a blog post
// @Tags         blogs
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /blogs/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	err = h.service.DeletePost(c.Request().Context(), ports.DeletePostInput{
		PostID:    c.Param("id"),
		ActorID:   userID,
		ActorRole: role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPostNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Post doesn't exist!"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// toPostResponse maps the domain entity to the transport schema.
func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
