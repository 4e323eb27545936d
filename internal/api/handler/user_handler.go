package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studystack/classroom/internal/api/metrics"
	"github.com/studystack/classroom/internal/core/domain"
	"github.com/studystack/classroom/internal/core/ports"
)

// UserHandler handles the admin-facing account endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns accounts, optionally filtered by role.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role    query     string  false  "Filter by role (Student, Mentor, Admin)"
// @Param        search  query     string  false  "Username substring filter"
// @Success      200     {object}  map[string][]domain.User
// @Failure      400     {object}  errorResponse
// @Router       /api/users/ [get]
func (h *UserHandler) List(c echo.Context) error {
	var filter ports.UserFilter
	if raw := c.QueryParam("role"); raw != "" {
		role, ok := domain.ParseRole(raw)
		if !ok {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown role"})
		}
		filter.Role = role
	}
	filter.Search = c.QueryParam("search")

	users, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, envelope{Data: users})
}

// ApproveMentor marks a mentor account as approved.
//
// @Summary      Approve a mentor account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]domain.User
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id}/approve-mentor/ [put]
func (h *UserHandler) ApproveMentor(c echo.Context) error {
	user, err := h.service.ApproveMentor(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		case errors.Is(err, domain.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "user is not a mentor"})
		}
		return err
	}
	metrics.MentorApprovalsTotal.Inc()
	return c.JSON(http.StatusOK, envelope{Data: user})
}

// Delete removes an account and revokes its outstanding tokens.
//
// @Summary      Delete an account
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id}/ [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}
	metrics.UsersDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
