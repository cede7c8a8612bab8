// errors/model_errors.go
package errors

import "errors"

var (
	ErrModelNotFound = errors.New("model not found")
)
