package service

import (
	"context"
	"time"

	"github.com/studystack/classroom/internal/core/domain"
	"github.com/studystack/classroom/internal/core/ports"
)

// CourseService implements course listing and publication.
type CourseService struct {
	courses ports.CourseRepository
	users   ports.UserRepository
}

func NewCourseService(courses ports.CourseRepository, users ports.UserRepository) *CourseService {
	return &CourseService{courses: courses, users: users}
}

// Create publishes a course under the given mentor. Only approved mentors
// may publish.
func (s *CourseService) Create(ctx context.Context, title, mentorID string) (*domain.Course, error) {
	mentor, err := s.users.FindByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor.Role != domain.RoleMentor {
		return nil, domain.ErrForbidden
	}
	if !mentor.Approved {
		return nil, domain.ErrMentorNotApproved
	}

	course := &domain.Course{
		Title:      title,
		MentorID:   mentor.ID,
		MentorName: mentor.Username,
		CreatedAt:  time.Now().UTC(),
	}
	return s.courses.Create(ctx, course)
}

func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.courses.List(ctx)
}

func (s *CourseService) MyCourses(ctx context.Context, mentorID string) ([]domain.Course, error) {
	return s.courses.ListByMentor(ctx, mentorID)
}
