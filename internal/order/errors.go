package order

import "errors"

// Domain-specific errors for the order package.
var (
	ErrMobileRequired = errors.New("mobile number is required")
)
