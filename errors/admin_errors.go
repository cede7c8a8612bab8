// errors/admin_errors.go
package errors

import "errors"

var (
	ErrInvalidDateRange = errors.New("invalid date range")
)
