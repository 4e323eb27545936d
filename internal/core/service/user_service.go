package service

import (
	"context"
	"fmt"
	"time"

	"github.com/studystack/classroom/internal/core/domain"
	"github.com/studystack/classroom/internal/core/ports"
)

// UserService implements the admin-facing account operations.
type UserService struct {
	repo      ports.UserRepository
	revoker   ports.TokenRevoker
	revokeTTL time.Duration
}

// NewUserService builds a UserService. revokeTTL should cover the access
// token lifetime so that a deleted user's outstanding tokens stay denied
// until they expire on their own.
func NewUserService(repo ports.UserRepository, revoker ports.TokenRevoker, revokeTTL time.Duration) *UserService {
	if revokeTTL <= 0 {
		revokeTTL = time.Hour
	}
	return &UserService{repo: repo, revoker: revoker, revokeTTL: revokeTTL}
}

func (s *UserService) List(ctx context.Context, filter ports.UserFilter) ([]domain.User, error) {
	return s.repo.List(ctx, filter)
}

// ApproveMentor flips the approval flag on a mentor account. Approving a
// non-mentor is rejected rather than silently ignored.
func (s *UserService) ApproveMentor(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleMentor {
		return nil, domain.ErrInvalidRole
	}
	if err := s.repo.SetApproved(ctx, id, true); err != nil {
		return nil, fmt.Errorf("approve mentor: %w", err)
	}
	user.Approved = true
	return user, nil
}

// Delete removes the account and denylists its outstanding tokens, so the
// next authenticated request from that user comes back 401.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if err := s.revoker.Revoke(ctx, id, s.revokeTTL); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	return nil
}
