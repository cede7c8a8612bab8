// client/errors.go
package client

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the backend's error envelope: {"detail": "..."}. The detail is
// a human-readable message shown to the user verbatim.
type APIError struct {
	Status int    `json:"-"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsConflict reports whether err is a backend 400/409 rejection, e.g. a
// duplicate active assignment.
func IsConflict(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusConflict
}
