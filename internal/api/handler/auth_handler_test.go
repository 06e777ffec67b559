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

	"github.com/labstack/echo/v4"

	"github.com/bloghive/blog-backend/internal/core/domain"
)

type stubAuthService struct {
	signupUser *domain.User
	signupErr  error
	loginToken string
	loginErr   error
	users      []domain.User
	listErr    error
}

func (s *stubAuthService) Signup(_ context.Context, name, email, _ string) (*domain.User, error) {
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	if s.signupUser != nil {
		return s.signupUser, nil
	}
	return &domain.User{ID: "u1", Name: name, Email: email, Role: domain.RoleUser}, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, error) {
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return s.loginToken, nil
}

func (s *stubAuthService) ListUsers(_ context.Context) ([]domain.User, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.users, nil
}

func newAuthTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Created(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthTestContext(http.MethodPost, "/api/users",
		`{"name":"Alice","email":"alice@example.com","password":"pass123"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp signupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ID != "u1" || resp.Email != "alice@example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response must not leak password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Signup_ValidationFailures(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@example.com","password":"pass123"}`},
		{"bad email", `{"name":"A","email":"nope","password":"pass123"}`},
		{"short password", `{"name":"A","email":"a@example.com","password":"abc"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newAuthTestContext(http.MethodPost, "/api/users", tc.body)
			if err := h.Signup(c); err != nil {
				t.Fatalf("Signup returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{signupErr: domain.ErrUserExists})
	c, rec := newAuthTestContext(http.MethodPost, "/api/users",
		`{"name":"Alice","email":"alice@example.com","password":"pass123"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_StoreFailurePropagates(t *testing.T) {
	storeErr := fmt.Errorf("insert user: %w",
		errors.New("connection(localhost:27017) socket was unexpectedly closed"))
	h := NewAuthHandler(&stubAuthService{signupErr: storeErr})
	c, rec := newAuthTestContext(http.MethodPost, "/api/users",
		`{"name":"Alice","email":"alice@example.com","password":"pass123"}`)

	err := h.Signup(c)
	if !errors.Is(err, storeErr) {
		t.Fatalf("unexpected store errors must propagate to the central handler, got %v", err)
	}
	if c.Response().Committed {
		t.Fatalf("handler must not render unexpected errors itself")
	}
	if strings.Contains(rec.Body.String(), "socket") {
		t.Fatalf("store detail written to the response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginToken: "signed.jwt.token"})
	c, rec := newAuthTestContext(http.MethodPost, "/api/user",
		`{"email":"alice@example.com","password":"pass123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token != "signed.jwt.token" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, rec := newAuthTestContext(http.MethodPost, "/api/user",
		`{"email":"alice@example.com","password":"wrong"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_ListUsers(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{users: []domain.User{
		{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser},
		{ID: "u2", Name: "Bob", Email: "bob@example.com", Role: domain.RoleAdmin},
	}})
	c, rec := newAuthTestContext(http.MethodGet, "/api/users", "")

	if err := h.ListUsers(c); err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("user listing must not expose password hashes: %s", rec.Body.String())
	}
}
