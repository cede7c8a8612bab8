// errors/billing_errors.go
package errors

import "errors"

var (
	ErrBillNotFound    = errors.New("bill not found")
	ErrBillAlreadyPaid = errors.New("bill is already paid")
)
