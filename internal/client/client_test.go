package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/studystack/classroom/internal/core/domain"
	"github.com/studystack/classroom/internal/core/ports"
)

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := New(Config{
		BaseURL:  srv.URL + "/api/",
		Sessions: newSessionManager(t),
		Logger:   zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestClient_Login_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login/" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["username"] != "alice" || req["password"] != "pw" {
			t.Fatalf("unexpected body: %v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"access":"t1","refresh":"r1","user":{"username":"alice","role":"Mentor"}}}`))
	}))
	defer srv.Close()

	payload, err := newTestClient(t, srv).Login(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if payload.Credentials.Access != "t1" || payload.Credentials.Refresh != "r1" {
		t.Fatalf("unexpected credentials: %+v", payload.Credentials)
	}
	if payload.User.Username != "alice" || payload.User.Role != domain.RoleMentor {
		t.Fatalf("unexpected user: %+v", payload.User)
	}
}

func TestClient_Login_LowercaseRoleNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"access":"t1","refresh":"r1","user":{"username":"alice","role":"mentor"}}}`))
	}))
	defer srv.Close()

	payload, err := newTestClient(t, srv).Login(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if payload.User.Role != domain.RoleMentor {
		t.Fatalf("role not normalized: %q", payload.User.Role)
	}
}

func TestClient_Login_UnknownRoleRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"access":"t1","refresh":"r1","user":{"username":"alice","role":"Wizard"}}}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(t, srv).Login(context.Background(), "alice", "pw"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestClient_ErrorKinds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login/":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
		default:
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"user already exists"}`))
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Login(context.Background(), "alice", "bad")
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized kind, got %v", err)
	}

	_, err = c.Register(context.Background(), RegisterInput{Username: "alice", Role: domain.RoleStudent})
	var ae *APIError
	if !asAPIError(err, &ae) || ae.Kind != KindRequest || ae.Status != http.StatusConflict {
		t.Fatalf("expected request kind with 409, got %v", err)
	}
	if ae.Message != "user already exists" {
		t.Fatalf("server message not surfaced: %q", ae.Message)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClient(t, srv).ListCourses(context.Background())
	var ae *APIError
	if !asAPIError(err, &ae) || ae.Kind != KindTransport {
		t.Fatalf("expected transport kind, got %v", err)
	}
}

func TestClient_ListUsers_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("role") != "Mentor" {
			t.Fatalf("role filter not sent: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"data":[{"username":"alice","role":"Mentor"},{"username":"bob","role":"Mentor"}]}`))
	}))
	defer srv.Close()

	users, err := newTestClient(t, srv).ListUsers(context.Background(), ports.UserFilter{Role: domain.RoleMentor})
	if err != nil {
		t.Fatalf("list users failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func asAPIError(err error, target **APIError) bool {
	if err == nil {
		return false
	}
	ae, ok := err.(*APIError)
	if !ok {
		return false
	}
	*target = ae
	return true
}
