package ports

import (
	"context"

	"github.com/studystack/classroom/internal/core/domain"
)

type CourseService interface {
	Create(ctx context.Context, title, mentorID string) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
	MyCourses(ctx context.Context, mentorID string) ([]domain.Course, error)
}
