package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hrive/portal-backend/internal/core/domain"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, email, password string) (*domain.User, error)
	signupFn func(ctx context.Context, email, password, role string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Signup(ctx context.Context, email, password, role string) (*domain.User, error) {
	return s.signupFn(ctx, email, password, role)
}

func newAuthContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "hr@hrive.com" || password != "hr12345" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: 2, Email: email, Role: domain.RoleHR, PasswordHash: "$2a$10$x"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/login", `{"email":"hr@hrive.com","password":"hr12345"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["role"] != "hr" || resp["email"] != "hr@hrive.com" {
		t.Fatalf("unexpected payload: %v", resp)
	}
	if _, leaked := resp["password_hash"]; leaked {
		t.Fatalf("response must not carry the password hash")
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			t.Fatalf("store must not be touched on validation failure")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/login", `{"email":"hr@hrive.com"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/login", `{"email":"ghost@x.com","password":"nope"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_StoreFailure(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/login", `{"email":"a@x.com","password":"pw"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["detail"] == "" {
		t.Fatalf("500 response must carry a diagnostic detail")
	}
}

func TestAuthHandler_Signup_Created(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password, role string) (*domain.User, error) {
			if role != "manager" {
				t.Fatalf("unexpected role: %s", role)
			}
			return &domain.User{ID: 9, Email: email, Role: role}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/signup", `{"email":"new@x.com","password":"pw1234","role":"manager"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["role"] != "manager" || resp["email"] != "new@x.com" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestAuthHandler_Signup_Conflict(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password, role string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/signup", `{"email":"dup@x.com","password":"pw"}`)
	_ = h.Signup(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_InvalidRole(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password, role string) (*domain.User, error) {
			return nil, domain.ErrInvalidRole
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/signup", `{"email":"x@x.com","password":"pw","role":"superuser"}`)
	_ = h.Signup(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password, role string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/signup", "not-json")
	_ = h.Signup(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
