// Package client implements the outbound API surface: a typed REST client
// whose transport attaches the session credential to every call and reacts
// to authorization failures globally.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/studystack/classroom/internal/client/session"
	"github.com/studystack/classroom/internal/core/domain"
	"github.com/studystack/classroom/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// Config wires a Client to the session manager and navigator.
type Config struct {
	BaseURL   string
	Sessions  *session.Manager
	Navigator Navigator
	Timeout   time.Duration
	Logger    zerolog.Logger

	// Transport overrides the base RoundTripper beneath the credential
	// layer. Nil means http.DefaultTransport.
	Transport http.RoundTripper
}

// Client is the typed REST client for the classroom backend.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     zerolog.Logger
}

// New builds a Client. BaseURL is the API root, e.g.
// "http://localhost:8000/api/".
func New(cfg Config) (*Client, error) {
	if cfg.Sessions == nil {
		return nil, fmt.Errorf("client: session manager is required")
	}
	raw := cfg.BaseURL
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:   timeout,
			Transport: NewTransport(cfg.Transport, cfg.Sessions, UnauthorizedHandler(cfg.Sessions, cfg.Navigator)),
		},
		log: cfg.Logger,
	}, nil
}

// --- Wire types ---

// AuthPayload is the decoded success body of login and register.
type AuthPayload struct {
	Credentials domain.Credentials
	User        domain.User
}

type authData struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    domain.User `json:"user"`
}

type registerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createCourseRequest struct {
	Title string `json:"title"`
}

// RegisterInput carries the profile fields collected by the register flow.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Role      domain.Role
}

// --- Operations ---

func (c *Client) Login(ctx context.Context, username, password string) (*AuthPayload, error) {
	var data authData
	err := c.do(ctx, http.MethodPost, "auth/login/", nil, loginRequest{Username: username, Password: password}, &data)
	if err != nil {
		return nil, err
	}
	return toAuthPayload(data)
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (*AuthPayload, error) {
	req := registerRequest{
		Username:  in.Username,
		Password:  in.Password,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      in.Role.String(),
	}
	var data authData
	if err := c.do(ctx, http.MethodPost, "auth/register/", nil, req, &data); err != nil {
		return nil, err
	}
	return toAuthPayload(data)
}

func (c *Client) ListUsers(ctx context.Context, filter ports.UserFilter) ([]domain.User, error) {
	query := url.Values{}
	if filter.Role != "" {
		query.Set("role", filter.Role.String())
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "users/", query, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ApproveMentor(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPut, "users/"+url.PathEscape(id)+"/approve-mentor/", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "users/"+url.PathEscape(id)+"/", nil, nil, nil)
}

func (c *Client) ListCourses(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	if err := c.do(ctx, http.MethodGet, "courses/", nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) CreateCourse(ctx context.Context, title string) (*domain.Course, error) {
	var course domain.Course
	if err := c.do(ctx, http.MethodPost, "courses/", nil, createCourseRequest{Title: title}, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) MyCourses(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	if err := c.do(ctx, http.MethodGet, "courses/my/", nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// --- Plumbing ---

// do performs one request against the API. out, when non-nil, receives the
// contents of the success body's "data" envelope. Failures resolve to a
// single *APIError; 401 handling has already run inside the transport by
// the time do returns.
func (c *Client) do(ctx context.Context, method, ref string, query url.Values, body, out any) error {
	rel, err := url.Parse(ref)
	if err != nil {
		return fmt.Errorf("build url: %w", err)
	}
	u := c.baseURL.ResolveReference(rel)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", ref).Msg("request failed in transport")
		return &APIError{Kind: KindTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFor(resp.StatusCode, decodeErrorMessage(resp))
	}

	if out == nil {
		return nil
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &APIError{Kind: KindRequest, Status: resp.StatusCode, Message: "malformed response body"}
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &APIError{Kind: KindRequest, Status: resp.StatusCode, Message: "malformed response payload"}
	}
	return nil
}

func decodeErrorMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return http.StatusText(resp.StatusCode)
	}
	return body.Error
}

// toAuthPayload normalizes the wire identity; an unknown role in an auth
// response is a contract violation, not something to store.
func toAuthPayload(data authData) (*AuthPayload, error) {
	role, ok := domain.ParseRole(data.User.Role.String())
	if !ok {
		return nil, &APIError{Kind: KindRequest, Message: "unknown role in auth response"}
	}
	user := data.User
	user.Role = role

	creds := domain.Credentials{Access: data.Access, Refresh: data.Refresh}
	if !creds.Present() {
		return nil, &APIError{Kind: KindRequest, Message: "incomplete credential pair in auth response"}
	}
	return &AuthPayload{Credentials: creds, User: user}, nil
}
