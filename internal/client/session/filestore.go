package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/studystack/classroom/internal/core/domain"
)

// FileStore persists the session as a single JSON document on disk. One
// session slot per path; writers are last-write-wins. The write is not
// atomic at the filesystem level, matching the single-process assumption.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore rooted at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the per-user session file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "classroom", "session.json"), nil
}

func (s *FileStore) Write(creds domain.Credentials, user domain.User) error {
	identity, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serialize identity: %w", err)
	}

	raw, err := json.Marshal(Snapshot{
		Access:  creds.Access,
		Refresh: creds.Refresh,
		User:    string(identity),
	})
	if err != nil {
		return fmt.Errorf("serialize session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Read loads the persisted session. A missing file is an anonymous session;
// a corrupt or incomplete one is wiped and also reported as anonymous.
func (s *FileStore) Read() (domain.Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Anonymous(), nil
		}
		return domain.Anonymous(), fmt.Errorf("read session: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return s.wipe()
	}

	creds := domain.Credentials{Access: snap.Access, Refresh: snap.Refresh}
	if !creds.Present() || snap.User == "" {
		return s.wipe()
	}

	var user domain.User
	if err := json.Unmarshal([]byte(snap.User), &user); err != nil {
		return s.wipe()
	}
	role, ok := domain.ParseRole(user.Role.String())
	if !ok {
		return s.wipe()
	}
	user.Role = role

	return domain.NewSession(creds, user), nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// wipe discards a corrupt entry and reports anonymous. The removal error is
// intentionally dropped: a failed wipe must not surface as a read failure.
func (s *FileStore) wipe() (domain.Session, error) {
	_ = s.Clear()
	return domain.Anonymous(), nil
}
