// Package guard gates role-restricted views against the current session.
package guard

import "github.com/studystack/classroom/internal/core/domain"

// LoginPath is where every rejected navigation lands. A role mismatch also
// redirects here rather than to a distinct forbidden view, discarding the
// fact that the caller is authenticated; see DESIGN.md.
const LoginPath = "/login"

// Outcome is the result of a guard evaluation.
type Outcome string

const (
	Allow         Outcome = "allow"
	RedirectLogin Outcome = "redirect_login"
)

// Decision carries the outcome plus the redirect target when navigation is
// rejected.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Allowed reports whether the guarded view may render.
func (d Decision) Allowed() bool { return d.Outcome == Allow }

// Evaluate compares the required role for a destination against the current
// session. It is a pure function evaluated fresh on every navigation — no
// decision is cached, so a re-login under a different role takes effect on
// the very next evaluation.
func Evaluate(sess domain.Session, required domain.Role) Decision {
	role, ok := sess.Role()
	if !ok || role != required {
		return Decision{Outcome: RedirectLogin, Target: LoginPath}
	}
	return Decision{Outcome: Allow}
}
