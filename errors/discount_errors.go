// errors/discount_errors.go
package errors

import "errors"

var (
	ErrDiscountNotFound = errors.New("discount not found")
	ErrAlreadyEnrolled  = errors.New("already enrolled in this discount")
	ErrDiscountExpired  = errors.New("discount has expired")
)
