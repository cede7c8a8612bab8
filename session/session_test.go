package session

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jerrors "github.com/jupiterai/jupiterctl/errors"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.toml")

	in := &Session{
		Token:     "tok-123",
		TokenType: "bearer",
		Username:  "admin",
		SavedAt:   time.Now().UTC().Truncate(time.Second),
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second),
	}
	require.NoError(t, in.Save(path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in.Token, out.Token)
	assert.Equal(t, in.Username, out.Username)
	assert.True(t, out.Valid())
}

func TestLoadMissingFileMeansNotAuthenticated(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.True(t, errors.Is(err, jerrors.ErrNotAuthenticated))
}

func TestValid(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Valid())
	assert.False(t, (&Session{}).Valid())
	assert.False(t, (&Session{Token: "t", ExpiresAt: time.Now().Add(-time.Minute)}).Valid())
	assert.True(t, (&Session{Token: "t"}).Valid())
	assert.True(t, (&Session{Token: "t", ExpiresAt: time.Now().Add(time.Minute)}).Valid())
}

func TestClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, (&Session{Token: "t"}).Save(path))
	require.NoError(t, Clear(path))
	require.NoError(t, Clear(path))

	_, err := Load(path)
	assert.True(t, errors.Is(err, jerrors.ErrNotAuthenticated))
}

func TestAuthorizationHeader(t *testing.T) {
	s := &Session{Token: "abc", TokenType: "bearer"}
	assert.Equal(t, "Bearer abc", s.Authorization())
}
