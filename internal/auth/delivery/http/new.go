package http

import (
	"voltassist/internal/auth"
	"voltassist/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	RequestOTP(c interface{})
	VerifyOTP(c interface{})
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
