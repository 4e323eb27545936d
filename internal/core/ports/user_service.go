package ports

import (
	"context"

	"github.com/studystack/classroom/internal/core/domain"
)

type UserService interface {
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	ApproveMentor(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
