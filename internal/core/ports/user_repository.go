package ports

import (
	"context"

	"github.com/studystack/classroom/internal/core/domain"
)

// UserFilter narrows List results. Zero value lists everyone.
type UserFilter struct {
	Role   domain.Role
	Search string
}

// UserRepository defines the persistence interface for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
}
