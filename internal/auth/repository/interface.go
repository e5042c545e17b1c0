package repository

import (
	"context"
	"time"

	"voltassist/internal/auth"
)

// SessionRepository stores one-time codes and login sessions with expiry.
type SessionRepository interface {
	// SaveOTP stores the code for a mobile number, replacing any previous one.
	SaveOTP(ctx context.Context, mobile, code string, ttl time.Duration) error

	// GetOTP returns the stored code, or "" when absent or expired.
	GetOTP(ctx context.Context, mobile string) (string, error)

	// DeleteOTP removes the code after a successful verification.
	DeleteOTP(ctx context.Context, mobile string) error

	// SaveSession stores a session under its token.
	SaveSession(ctx context.Context, sess auth.Session, ttl time.Duration) error

	// GetSession returns the session for a token, or a zero-value Session
	// (Token == "") when absent or expired.
	GetSession(ctx context.Context, token string) (auth.Session, error)
}
