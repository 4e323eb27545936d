package ports

import (
	"context"

	"github.com/studystack/classroom/internal/core/domain"
)

// CourseRepository defines the persistence interface for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
	ListByMentor(ctx context.Context, mentorID string) ([]domain.Course, error)
}
