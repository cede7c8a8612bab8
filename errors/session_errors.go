// errors/session_errors.go
package errors

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated: run 'jupiterctl login' first")
	ErrSessionExpired   = errors.New("session expired: run 'jupiterctl login' again")
	ErrInvalidSession   = errors.New("invalid session file")
)
