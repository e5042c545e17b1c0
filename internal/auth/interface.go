package auth

import (
	"context"

	"voltassist/internal/model"
)

// UseCase defines the business logic interface for the auth domain.
type UseCase interface {
	// RequestOTP validates the mobile number and sends a one-time code to it.
	RequestOTP(ctx context.Context, input RequestOTPInput) error

	// VerifyOTP checks the submitted code and, when valid, creates a session.
	VerifyOTP(ctx context.Context, input VerifyOTPInput) (Session, error)

	// ResolveSession maps a session token to the caller scope.
	ResolveSession(ctx context.Context, token string) (model.Scope, error)
}
