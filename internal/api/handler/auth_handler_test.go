package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/studystack/classroom/internal/core/domain"
	"github.com/studystack/classroom/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, username, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, username, password)
}

func newAuthContext(t *testing.T, e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			if in.Username != "alice" || in.Role != domain.RoleMentor {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				Credentials: domain.Credentials{Access: "t1", Refresh: "r1"},
				User:        &domain.User{Username: in.Username, Role: in.Role},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := `{"username":"alice","password":"secret123","email":"a@example.com","first_name":"Alice","last_name":"Doe","role":"Mentor"}`
	c, rec := newAuthContext(t, e, "/api/auth/register/", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Access  string      `json:"access"`
			Refresh string      `json:"refresh"`
			User    domain.User `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data.Access != "t1" || resp.Data.Refresh != "r1" {
		t.Fatalf("unexpected tokens: %+v", resp.Data)
	}
	if resp.Data.User.Username != "alice" || resp.Data.User.Role != domain.RoleMentor {
		t.Fatalf("unexpected user payload: %+v", resp.Data.User)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	// Bad email, short password, admin role: never reaches the service.
	body := `{"username":"bob","password":"x","email":"nope","first_name":"B","last_name":"C","role":"Admin"}`
	c, rec := newAuthContext(t, e, "/api/auth/register/", body)

	_ = h.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	body := `{"username":"bob","password":"secret123","email":"b@example.com","first_name":"Bob","last_name":"Doe","role":"Student"}`
	c, rec := newAuthContext(t, e, "/api/auth/register/", body)

	_ = h.Register(c)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			if username != "alice" || password != "pw" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.AuthResult{
				Credentials: domain.Credentials{Access: "t1", Refresh: "r1"},
				User:        &domain.User{Username: "alice", Role: domain.RoleMentor},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, e, "/api/auth/login/", `{"username":"alice","password":"pw"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"]
	if data["access"] != "t1" || data["refresh"] != "r1" {
		t.Fatalf("unexpected payload: %+v", data)
	}
	user, ok := data["user"].(map[string]any)
	if !ok || user["username"] != "alice" || user["role"] != "Mentor" {
		t.Fatalf("unexpected user payload: %+v", data["user"])
	}
}

func TestAuthHandler_Login_EmptyUsername(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, e, "/api/auth/login/", `{"username":"","password":"pw"}`)

	_ = h.Login(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, e, "/api/auth/login/", `{"username":"alice","password":"bad"}`)

	_ = h.Login(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, e, "/api/auth/login/", "not-json")

	_ = h.Login(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
