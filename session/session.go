// session/session.go

// Package session holds the login session that authenticates every API call.
// The session is explicit state handed to the client layer, never a global:
// commands load it once, pass it down, and persist it after login.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	jerrors "github.com/jupiterai/jupiterctl/errors"
)

// Session is a bearer token plus enough metadata to know when to re-login.
type Session struct {
	Token     string    `toml:"token"`
	TokenType string    `toml:"token_type"`
	Username  string    `toml:"username"`
	SavedAt   time.Time `toml:"saved_at"`
	ExpiresAt time.Time `toml:"expires_at"`
}

// Load reads a session file. A missing file means the user never logged in.
func Load(path string) (*Session, error) {
	var s Session
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if os.IsNotExist(err) {
			return nil, jerrors.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("%w: %v", jerrors.ErrInvalidSession, err)
	}
	if s.Token == "" {
		return nil, jerrors.ErrInvalidSession
	}
	return &s, nil
}

// Save writes the session file with owner-only permissions.
func (s *Session) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s)
}

// Clear removes the persisted session (logout).
func Clear(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Valid reports whether the session can still authenticate requests.
func (s *Session) Valid() bool {
	if s == nil || s.Token == "" {
		return false
	}
	if !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt) {
		return false
	}
	return true
}

// Authorization renders the header value attached to every request.
// The backend reports token_type "bearer"; the header convention is "Bearer".
func (s *Session) Authorization() string {
	return "Bearer " + s.Token
}
