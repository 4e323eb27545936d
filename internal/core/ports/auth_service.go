package ports

import (
	"context"

	"github.com/studystack/classroom/internal/core/domain"
)

// RegisterInput carries the profile fields collected at sign-up.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Role      domain.Role
}

// AuthResult is the payload of a successful login or registration: the token
// pair plus the resolved identity, exactly what the client persists.
type AuthResult struct {
	Credentials domain.Credentials
	User        *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}
