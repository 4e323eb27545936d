// Package flows implements the auth flows: the only producers of new
// sessions. Each flow validates its form locally, calls the backend, and on
// success hands the payload to the session manager before yielding the
// role-keyed redirect target.
package flows

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/studystack/classroom/internal/client"
	"github.com/studystack/classroom/internal/client/session"
	"github.com/studystack/classroom/internal/core/domain"
)

// LoginForm carries the login fields. Empty fields are rejected before any
// network round-trip.
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// RegisterForm additionally collects the profile fields; email syntax is
// checked locally before dispatch.
type RegisterForm struct {
	Username  string      `validate:"required"`
	Password  string      `validate:"required,min=8"`
	Email     string      `validate:"required,email"`
	FirstName string      `validate:"required"`
	LastName  string      `validate:"required"`
	Role      domain.Role `validate:"required,oneof=Student Mentor"`
}

// Backend is the slice of the API client the flows depend on.
type Backend interface {
	Login(ctx context.Context, username, password string) (*client.AuthPayload, error)
	Register(ctx context.Context, in client.RegisterInput) (*client.AuthPayload, error)
}

// Flow runs the login and registration flows against a backend and a
// session manager.
type Flow struct {
	backend  Backend
	sessions *session.Manager
	validate *validator.Validate
	log      zerolog.Logger
}

func New(backend Backend, sessions *session.Manager, log zerolog.Logger) *Flow {
	return &Flow{
		backend:  backend,
		sessions: sessions,
		validate: validator.New(),
		log:      log,
	}
}

// Login runs one login attempt and returns the dashboard path for the
// authenticated role. On any failure the session is left exactly as it was.
// settled, when non-nil, fires exactly once per attempt on both branches —
// it is the terminal signal that releases any in-flight indicator.
func (f *Flow) Login(ctx context.Context, form LoginForm, settled func()) (string, error) {
	if settled != nil {
		defer settled()
	}
	if err := f.check(form); err != nil {
		return "", err
	}

	payload, err := f.backend.Login(ctx, form.Username, form.Password)
	if err != nil {
		f.log.Debug().Err(err).Str("username", form.Username).Msg("login attempt failed")
		return "", err
	}

	if err := f.sessions.Login(payload.Credentials, payload.User); err != nil {
		return "", err
	}
	return payload.User.Role.DashboardPath(), nil
}

// Register runs one registration attempt. A successful registration signs
// the user straight in, same contract as Login.
func (f *Flow) Register(ctx context.Context, form RegisterForm, settled func()) (string, error) {
	if settled != nil {
		defer settled()
	}
	if err := f.check(form); err != nil {
		return "", err
	}

	payload, err := f.backend.Register(ctx, client.RegisterInput{
		Username:  form.Username,
		Password:  form.Password,
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Role:      form.Role,
	})
	if err != nil {
		f.log.Debug().Err(err).Str("username", form.Username).Msg("registration attempt failed")
		return "", err
	}

	if err := f.sessions.Login(payload.Credentials, payload.User); err != nil {
		return "", err
	}
	return payload.User.Role.DashboardPath(), nil
}

// check validates a form locally, folding field failures into a single
// validation error so nothing reaches the network.
func (f *Flow) check(form any) error {
	err := f.validate.Struct(form)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldMessage(fe))
		}
		return client.ValidationError(strings.Join(msgs, "; "))
	}
	return client.ValidationError(err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
