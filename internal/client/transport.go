package client

import (
	"net/http"

	"github.com/studystack/classroom/internal/client/session"
	"github.com/studystack/classroom/internal/core/domain"
)

// Client-side view paths. The auth flows and the 401 handler route between
// them; role dashboards come from domain.Role.DashboardPath.
const (
	PathLogin    = "/login"
	PathRegister = "/register"
)

// CredentialSource yields the token pair attached to outbound requests.
// *session.Manager satisfies it.
type CredentialSource interface {
	Credentials() (domain.Credentials, bool)
}

// Navigator abstracts the application's current view and forced redirects,
// standing in for the browser location of the original web client.
type Navigator interface {
	Current() string
	Go(path string)
}

// Transport is the single outbound gateway: it attaches the bearer
// credential to every request when one is present and intercepts 401
// responses. It never fails a request of its own accord — a request without
// credentials is simply sent bare.
type Transport struct {
	base           http.RoundTripper
	creds          CredentialSource
	onUnauthorized func()
}

// NewTransport wraps base (http.DefaultTransport when nil). onUnauthorized
// runs on every 401 response before it is handed back to the caller.
func NewTransport(base http.RoundTripper, creds CredentialSource, onUnauthorized func()) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, creds: creds, onUnauthorized: onUnauthorized}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.creds != nil {
		if creds, ok := t.creds.Credentials(); ok {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+creds.Access)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
		t.onUnauthorized()
	}
	return resp, nil
}

// UnauthorizedHandler is the one-shot invalidation wired into the Transport:
// tear down the whole session and force the login view, unless the user is
// already on the login or registration view. There is deliberately no
// refresh-and-retry path.
func UnauthorizedHandler(sessions *session.Manager, nav Navigator) func() {
	return func() {
		sessions.Invalidate()
		if nav == nil {
			return
		}
		if p := nav.Current(); p == PathLogin || p == PathRegister {
			return
		}
		nav.Go(PathLogin)
	}
}
