package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloghive/blog-backend/internal/core/domain"
	"github.com/bloghive/blog-backend/internal/core/ports"
)

type stubEngagementService struct {
	likeResult    *ports.LikeResult
	likeErr       error
	likeCount     int64
	countErr      error
	likeUsers     []string
	comment       *domain.Comment
	commentErr    error
	comments      []domain.Comment
	listErr       error
	totalLikes    int64
	totalComments int64

	addedLikePost string
	addedLikeUser string
}

func (s *stubEngagementService) AddLike(_ context.Context, postID, userID string) (*ports.LikeResult, error) {
	s.addedLikePost, s.addedLikeUser = postID, userID
	if s.likeErr != nil {
		return nil, s.likeErr
	}
	if s.likeResult != nil {
		return s.likeResult, nil
	}
	return &ports.LikeResult{PostID: postID, UserID: userID}, nil
}

func (s *stubEngagementService) CountLikes(_ context.Context, _ string) (int64, error) {
	return s.likeCount, s.countErr
}

func (s *stubEngagementService) ListLikeUsers(_ context.Context, _ string) ([]string, error) {
	if s.countErr != nil {
		return nil, s.countErr
	}
	return s.likeUsers, nil
}

func (s *stubEngagementService) TotalLikeCount(_ context.Context) (int64, error) {
	return s.totalLikes, nil
}

func (s *stubEngagementService) AddComment(_ context.Context, postID, userID, content string) (*domain.Comment, error) {
	if s.commentErr != nil {
		return nil, s.commentErr
	}
	if s.comment != nil {
		return s.comment, nil
	}
	return &domain.Comment{ID: "c1", PostID: postID, UserID: userID, Content: content, CreatedAt: time.Now().UTC()}, nil
}

func (s *stubEngagementService) ListComments(_ context.Context, _ string) ([]domain.Comment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.comments, nil
}

func (s *stubEngagementService) TotalCommentCount(_ context.Context) (int64, error) {
	return s.totalComments, nil
}

func newEngagementTestContext(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
		c.Set("role", domain.RoleUser)
	}
	return c, rec
}

func TestEngagementHandler_AddLike_Created(t *testing.T) {
	svc := &stubEngagementService{}
	h := NewEngagementHandler(svc)

	c, rec := newEngagementTestContext(http.MethodPost, "/api/blogs/p1/like", "", "u1")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.AddLike(c); err != nil {
		t.Fatalf("AddLike returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Like added") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if svc.addedLikePost != "p1" || svc.addedLikeUser != "u1" {
		t.Fatalf("service called with (%s, %s)", svc.addedLikePost, svc.addedLikeUser)
	}
}

func TestEngagementHandler_AddLike_DuplicateStillSucceeds(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{
		likeResult: &ports.LikeResult{PostID: "p1", UserID: "u1", AlreadyLiked: true},
	})

	c, rec := newEngagementTestContext(http.MethodPost, "/api/blogs/p1/like", "", "u1")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.AddLike(c); err != nil {
		t.Fatalf("AddLike returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for repeat like, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Like added") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestEngagementHandler_AddLike_PostNotFound(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{likeErr: domain.ErrPostNotFound})

	c, rec := newEngagementTestContext(http.MethodPost, "/api/blogs/missing/like", "", "u1")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.AddLike(c); err != nil {
		t.Fatalf("AddLike returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Post doesn't exist!") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestEngagementHandler_AddLike_StoreFailurePropagates(t *testing.T) {
	storeErr := fmt.Errorf("add like: %w", errors.New("server selection timeout"))
	h := NewEngagementHandler(&stubEngagementService{likeErr: storeErr})

	c, rec := newEngagementTestContext(http.MethodPost, "/api/blogs/p1/like", "", "u1")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	err := h.AddLike(c)
	if !errors.Is(err, storeErr) {
		t.Fatalf("unexpected store errors must propagate to the central handler, got %v", err)
	}
	if c.Response().Committed {
		t.Fatalf("handler must not render unexpected errors itself")
	}
	if strings.Contains(rec.Body.String(), "timeout") {
		t.Fatalf("store detail written to the response: %s", rec.Body.String())
	}
}

func TestEngagementHandler_AddLike_NoIdentity(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{})

	c, _ := newEngagementTestContext(http.MethodPost, "/api/blogs/p1/like", "", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	err := h.AddLike(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestEngagementHandler_CountLikes(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{likeCount: 7})

	c, rec := newEngagementTestContext(http.MethodGet, "/api/blogs/p1/likes", "", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.CountLikes(c); err != nil {
		t.Fatalf("CountLikes returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp likeCountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.LikeCount != 7 {
		t.Fatalf("expected likeCount 7, got %d", resp.LikeCount)
	}
}

func TestEngagementHandler_CountLikes_PostNotFound(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{countErr: domain.ErrPostNotFound})

	c, rec := newEngagementTestContext(http.MethodGet, "/api/blogs/missing/likes", "", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.CountLikes(c); err != nil {
		t.Fatalf("CountLikes returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Post not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestEngagementHandler_ListLikeUsers_Empty(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{likeUsers: []string{}})

	c, rec := newEngagementTestContext(http.MethodGet, "/api/blogs/p1/likeusers", "", "u1")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.ListLikeUsers(c); err != nil {
		t.Fatalf("ListLikeUsers returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp likeUsersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Likes == nil || len(resp.Likes) != 0 {
		t.Fatalf("expected empty likes list, got %v", resp.Likes)
	}
}

func TestEngagementHandler_TotalLikes(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{totalLikes: 31})

	c, rec := newEngagementTestContext(http.MethodGet, "/api/blogs/likes/count", "", "")

	if err := h.TotalLikes(c); err != nil {
		t.Fatalf("TotalLikes returned error: %v", err)
	}

	var resp totalLikesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.TotalLikesCount != 31 {
		t.Fatalf("expected totalLikesCount 31, got %d", resp.TotalLikesCount)
	}
}

func TestEngagementHandler_AddComment_Created(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{})

	c, rec := newEngagementTestContext(http.MethodPost, "/api/blogs/p1/comments",
		`{"content":"great write-up"}`, "u1")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.AddComment(c); err != nil {
		t.Fatalf("AddComment returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp commentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.PostID != "p1" || resp.UserID != "u1" || resp.Content != "great write-up" {
		t.Fatalf("unexpected comment: %+v", resp)
	}
}

func TestEngagementHandler_AddComment_EmptyContent(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{commentErr: domain.ErrEmptyComment})

	c, rec := newEngagementTestContext(http.MethodPost, "/api/blogs/p1/comments",
		`{"content":""}`, "u1")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.AddComment(c); err != nil {
		t.Fatalf("AddComment returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "content is required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestEngagementHandler_AddComment_PostNotFound(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{commentErr: domain.ErrPostNotFound})

	c, rec := newEngagementTestContext(http.MethodPost, "/api/blogs/missing/comments",
		`{"content":"hello"}`, "u1")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.AddComment(c); err != nil {
		t.Fatalf("AddComment returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Post doesn't exist!") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestEngagementHandler_ListComments(t *testing.T) {
	now := time.Now().UTC()
	h := NewEngagementHandler(&stubEngagementService{comments: []domain.Comment{
		{ID: "c1", PostID: "p1", UserID: "u1", Content: "first", CreatedAt: now},
		{ID: "c2", PostID: "p1", UserID: "u2", Content: "second", CreatedAt: now.Add(time.Minute)},
	}})

	c, rec := newEngagementTestContext(http.MethodGet, "/api/blogs/p1/comments", "", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.ListComments(c); err != nil {
		t.Fatalf("ListComments returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []commentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 || resp[0].Content != "first" {
		t.Fatalf("unexpected comments: %+v", resp)
	}
}

func TestEngagementHandler_ListComments_PostNotFound(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{listErr: domain.ErrPostNotFound})

	c, rec := newEngagementTestContext(http.MethodGet, "/api/blogs/missing/comments", "", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.ListComments(c); err != nil {
		t.Fatalf("ListComments returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "Post not found" {
		t.Fatalf("expected message field, got body %s", rec.Body.String())
	}
}

func TestEngagementHandler_TotalComments(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{totalComments: 12})

	c, rec := newEngagementTestContext(http.MethodGet, "/api/blogs/comments/count", "", "")

	if err := h.TotalComments(c); err != nil {
		t.Fatalf("TotalComments returned error: %v", err)
	}

	var resp totalCommentsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.TotalCommentsCount != 12 {
		t.Fatalf("expected totalCommentsCount 12, got %d", resp.TotalCommentsCount)
	}
}
