package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/studystack/classroom/internal/core/domain"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := tempStore(t)

	creds := domain.Credentials{Access: "t1", Refresh: "r1"}
	user := domain.User{ID: "u1", Username: "alice", Email: "a@example.com", Role: domain.RoleMentor}

	if err := store.Write(creds, user); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	sess, err := store.Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !sess.Authenticated() {
		t.Fatalf("expected authenticated session")
	}
	if sess.Credentials != creds {
		t.Fatalf("credentials mismatch: %+v", sess.Credentials)
	}
	if sess.User.Username != "alice" || sess.User.Role != domain.RoleMentor || sess.User.Email != "a@example.com" {
		t.Fatalf("identity mismatch: %+v", sess.User)
	}
}

func TestFileStore_MissingFileIsAnonymous(t *testing.T) {
	store := tempStore(t)

	sess, err := store.Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if sess.Authenticated() {
		t.Fatalf("expected anonymous session")
	}
}

func TestFileStore_CorruptDocumentWiped(t *testing.T) {
	store := tempStore(t)
	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(store.path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	sess, err := store.Read()
	if err != nil {
		t.Fatalf("read must not fail on corruption: %v", err)
	}
	if sess.Authenticated() {
		t.Fatalf("expected anonymous session")
	}
	if _, err := os.Stat(store.path); !os.IsNotExist(err) {
		t.Fatalf("corrupt entry not wiped")
	}
}

func TestFileStore_CorruptIdentityWiped(t *testing.T) {
	store := tempStore(t)
	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Valid envelope, unparseable identity string.
	raw := `{"access":"t1","refresh":"r1","user":"###"}`
	if err := os.WriteFile(store.path, []byte(raw), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	sess, err := store.Read()
	if err != nil {
		t.Fatalf("read must not fail on corruption: %v", err)
	}
	if sess.Authenticated() {
		t.Fatalf("expected anonymous session")
	}
	if _, err := os.Stat(store.path); !os.IsNotExist(err) {
		t.Fatalf("corrupt entry not wiped")
	}
}

func TestFileStore_MissingTokenIsAnonymous(t *testing.T) {
	store := tempStore(t)
	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Refresh token missing: incomplete pair counts as unauthenticated.
	raw := `{"access":"t1","refresh":"","user":"{\"username\":\"alice\",\"role\":\"Student\"}"}`
	if err := os.WriteFile(store.path, []byte(raw), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	sess, err := store.Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if sess.Authenticated() {
		t.Fatalf("expected anonymous session")
	}
}

func TestFileStore_LegacyRoleCasingNormalized(t *testing.T) {
	store := tempStore(t)
	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Older clients persisted lowercase role strings.
	raw := `{"access":"t1","refresh":"r1","user":"{\"username\":\"alice\",\"role\":\"student\"}"}`
	if err := os.WriteFile(store.path, []byte(raw), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	sess, err := store.Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !sess.Authenticated() {
		t.Fatalf("expected authenticated session")
	}
	if sess.User.Role != domain.RoleStudent {
		t.Fatalf("role not normalized: %q", sess.User.Role)
	}
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	store := tempStore(t)
	if err := store.Clear(); err != nil {
		t.Fatalf("clear on empty store failed: %v", err)
	}
	if err := store.Write(domain.Credentials{Access: "a", Refresh: "r"}, domain.User{Username: "x", Role: domain.RoleStudent}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
}
