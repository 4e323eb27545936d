package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studystack/classroom/internal/core/domain"
	"github.com/studystack/classroom/internal/core/ports"
)

// CourseHandler handles course listing and publication.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

type createCourseRequest struct {
	Title string `json:"title" validate:"required"`
}

// List returns all published courses.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]domain.Course
// @Router       /api/courses/ [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return c.JSON(http.StatusOK, envelope{Data: courses})
}

// Create publishes a new course owned by the calling mentor.
//
// @Summary      Publish a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course fields"
// @Success      201   {object}  map[string]domain.Course
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/courses/ [post]
func (h *CourseHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	course, err := h.service.Create(c.Request().Context(), req.Title, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMentorNotApproved):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "mentor not approved"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, envelope{Data: course})
}

// My returns the calling mentor's own courses.
//
// @Summary      List own courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]domain.Course
// @Router       /api/courses/my/ [get]
func (h *CourseHandler) My(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	courses, err := h.service.MyCourses(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return c.JSON(http.StatusOK, envelope{Data: courses})
}
