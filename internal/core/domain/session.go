package domain

// Credentials is the bearer token pair issued on login or registration. Both
// tokens are opaque to the client; the refresh token is persisted alongside
// the access token but never redeemed (there is no refresh endpoint).
type Credentials struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Present reports whether a complete pair is held. A session missing either
// token counts as unauthenticated.
func (c Credentials) Present() bool {
	return c.Access != "" && c.Refresh != ""
}

// Session pairs stored credentials with the resolved identity. The zero value
// is the anonymous session. Exactly one session is active per process; there
// is no intermediate "refreshing" state.
type Session struct {
	Credentials Credentials
	User        *User
}

// Anonymous returns the unauthenticated session.
func Anonymous() Session { return Session{} }

// NewSession builds an authenticated session from a login payload.
func NewSession(creds Credentials, user User) Session {
	return Session{Credentials: creds, User: &user}
}

// Authenticated reports whether the session holds both a complete credential
// pair and a resolved identity.
func (s Session) Authenticated() bool {
	return s.User != nil && s.Credentials.Present()
}

// Role returns the session's role when authenticated.
func (s Session) Role() (Role, bool) {
	if !s.Authenticated() {
		return "", false
	}
	return s.User.Role, true
}
