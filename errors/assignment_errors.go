// errors/assignment_errors.go
package errors

import "errors"

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrInvalidGrant       = errors.New("invalid grant data")
	ErrEmptySelection     = errors.New("bulk assignment requires at least one user and one model")
	ErrPartialApply       = errors.New("some assignment operations failed")
)
