package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrInvalidMobile   = errors.New("invalid mobile number")
	ErrInvalidOTP      = errors.New("invalid or expired OTP")
	ErrSessionNotFound = errors.New("session not found or expired")
)
