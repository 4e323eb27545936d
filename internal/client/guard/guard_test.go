package guard

import (
	"testing"

	"github.com/studystack/classroom/internal/core/domain"
)

func authenticated(role domain.Role) domain.Session {
	return domain.NewSession(
		domain.Credentials{Access: "a", Refresh: "r"},
		domain.User{Username: "u", Role: role},
	)
}

func TestEvaluate_Matrix(t *testing.T) {
	cases := []struct {
		name     string
		session  domain.Session
		required domain.Role
		allowed  bool
	}{
		{"anonymous vs student", domain.Anonymous(), domain.RoleStudent, false},
		{"anonymous vs mentor", domain.Anonymous(), domain.RoleMentor, false},
		{"anonymous vs admin", domain.Anonymous(), domain.RoleAdmin, false},
		{"student vs mentor", authenticated(domain.RoleStudent), domain.RoleMentor, false},
		{"mentor vs admin", authenticated(domain.RoleMentor), domain.RoleAdmin, false},
		{"admin vs student", authenticated(domain.RoleAdmin), domain.RoleStudent, false},
		{"student vs student", authenticated(domain.RoleStudent), domain.RoleStudent, true},
		{"mentor vs mentor", authenticated(domain.RoleMentor), domain.RoleMentor, true},
		{"admin vs admin", authenticated(domain.RoleAdmin), domain.RoleAdmin, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Evaluate(tc.session, tc.required)
			if d.Allowed() != tc.allowed {
				t.Fatalf("Evaluate(%s) = %+v, want allowed=%v", tc.name, d, tc.allowed)
			}
			if !tc.allowed && d.Target != LoginPath {
				t.Fatalf("rejected navigation must target %s, got %q", LoginPath, d.Target)
			}
		})
	}
}

func TestEvaluate_ReflectsRelogin(t *testing.T) {
	// No caching: the same evaluation over a changed session flips.
	if Evaluate(authenticated(domain.RoleStudent), domain.RoleMentor).Allowed() {
		t.Fatalf("student allowed into mentor view")
	}
	if !Evaluate(authenticated(domain.RoleMentor), domain.RoleMentor).Allowed() {
		t.Fatalf("mentor rejected from mentor view after re-login")
	}
}

func TestEvaluate_IncompleteCredentials(t *testing.T) {
	// An identity without a full token pair counts as anonymous.
	sess := domain.NewSession(domain.Credentials{Access: "a"}, domain.User{Role: domain.RoleAdmin})
	if Evaluate(sess, domain.RoleAdmin).Allowed() {
		t.Fatalf("incomplete credential pair allowed through guard")
	}
}
