package auth

import "time"

// RequestOTPInput is the input for requesting a login code.
type RequestOTPInput struct {
	Mobile string
}

// VerifyOTPInput is the input for exchanging a code for a session.
type VerifyOTPInput struct {
	Mobile string
	Code   string
}

// Session is an authenticated login session.
type Session struct {
	Token     string    `json:"token"`
	Mobile    string    `json:"mobile"`
	ExpiresAt time.Time `json:"expires_at"`
}
