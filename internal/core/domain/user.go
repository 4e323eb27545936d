package domain

import (
	"strings"
	"time"
)

// Role is the closed set of actor roles. Wire values are case-sensitive
// ("Student", "Mentor", "Admin"); all comparisons go through ParseRole so a
// single canonical form exists.
type Role string

const (
	RoleStudent Role = "Student"
	RoleMentor  Role = "Mentor"
	RoleAdmin   Role = "Admin"
)

// ParseRole maps a wire string to a Role. Parsing tolerates casing drift in
// stored data but always yields the canonical form.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return RoleStudent, true
	case "mentor":
		return RoleMentor, true
	case "admin":
		return RoleAdmin, true
	}
	return "", false
}

// Valid reports whether r is one of the canonical roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleMentor || r == RoleAdmin
}

func (r Role) String() string { return string(r) }

// DashboardPath returns the view a freshly authenticated user of this role
// lands on after login.
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleMentor:
		return "/mentor"
	default:
		return "/student"
	}
}

// User models an account in the platform. Approved only matters for mentors:
// an unapproved mentor can log in but cannot publish courses until an admin
// approves the account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Role         Role      `json:"role"`
	Approved     bool      `json:"approved"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
