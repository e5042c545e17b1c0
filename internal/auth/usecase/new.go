package usecase

import (
	"time"

	"voltassist/internal/auth"
	"voltassist/internal/auth/repository"
	"voltassist/pkg/log"
	"voltassist/pkg/sms"
)

// Config tunes OTP and session lifetimes.
type Config struct {
	OTPTTL      time.Duration
	SessionTTL  time.Duration
	MockOTPCode string // fixed code used instead of a random one, dev/demo only
}

type implUsecase struct {
	l    log.Logger
	repo repository.SessionRepository
	sms  sms.Sender
	cfg  Config
}

var _ auth.UseCase = (*implUsecase)(nil)

// New creates a new auth usecase.
func New(l log.Logger, repo repository.SessionRepository, sender sms.Sender, cfg Config) *implUsecase {
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = 5 * time.Minute
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	return &implUsecase{
		l:    l,
		repo: repo,
		sms:  sender,
		cfg:  cfg,
	}
}
