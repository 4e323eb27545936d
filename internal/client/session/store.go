// Package session owns the client-side session: the durable token store and
// the in-memory reactive projection the rest of the application consumes.
package session

import "github.com/studystack/classroom/internal/core/domain"

// Snapshot is the raw persisted form of a session: three independent string
// entries — access token, refresh token, and the serialized identity —
// written and cleared together as a unit.
type Snapshot struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    string `json:"user"`
}

// Store is durable storage for the session. Implementations must survive a
// full process restart and must fail closed on corrupted contents: Read
// returns the anonymous session and wipes the bad entry instead of
// surfacing a parse error.
type Store interface {
	Write(creds domain.Credentials, user domain.User) error
	Read() (domain.Session, error)
	Clear() error
}
