package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"voltassist/internal/auth"
	"voltassist/internal/model"
)

// Indian mobile numbers: ten digits starting with 6-9.
var mobileRe = regexp.MustCompile(`^[6-9]\d{9}$`)

// cleanMobile strips spaces, dashes and a leading country code.
func cleanMobile(raw string) string {
	m := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
	m = strings.TrimPrefix(m, "+91")
	if len(m) > 10 {
		m = strings.TrimPrefix(m, "91")
	}
	return m
}

func (uc *implUsecase) RequestOTP(ctx context.Context, input auth.RequestOTPInput) error {
	mobile := cleanMobile(input.Mobile)
	if !mobileRe.MatchString(mobile) {
		return auth.ErrInvalidMobile
	}

	code := uc.cfg.MockOTPCode
	if code == "" {
		var err error
		code, err = randomCode()
		if err != nil {
			uc.l.Errorf(ctx, "auth.usecase.RequestOTP: generate code: %v", err)
			return err
		}
	}

	if err := uc.repo.SaveOTP(ctx, mobile, code, uc.cfg.OTPTTL); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.RequestOTP: save OTP: %v", err)
		return err
	}

	msg := fmt.Sprintf("Your VoltAssist login code is %s. It expires in %d minutes.", code, int(uc.cfg.OTPTTL.Minutes()))
	if err := uc.sms.Send(ctx, mobile, msg); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.RequestOTP: send SMS: %v", err)
		return err
	}
	return nil
}

func (uc *implUsecase) VerifyOTP(ctx context.Context, input auth.VerifyOTPInput) (auth.Session, error) {
	mobile := cleanMobile(input.Mobile)
	if !mobileRe.MatchString(mobile) {
		return auth.Session{}, auth.ErrInvalidMobile
	}

	stored, err := uc.repo.GetOTP(ctx, mobile)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.VerifyOTP: get OTP: %v", err)
		return auth.Session{}, err
	}
	if stored == "" || stored != strings.TrimSpace(input.Code) {
		return auth.Session{}, auth.ErrInvalidOTP
	}

	if err := uc.repo.DeleteOTP(ctx, mobile); err != nil {
		uc.l.Warnf(ctx, "auth.usecase.VerifyOTP: delete OTP: %v", err)
	}

	sess := auth.Session{
		Token:     uuid.NewString(),
		Mobile:    mobile,
		ExpiresAt: time.Now().Add(uc.cfg.SessionTTL).UTC(),
	}
	if err := uc.repo.SaveSession(ctx, sess, uc.cfg.SessionTTL); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.VerifyOTP: save session: %v", err)
		return auth.Session{}, err
	}
	return sess, nil
}

func (uc *implUsecase) ResolveSession(ctx context.Context, token string) (model.Scope, error) {
	if token == "" {
		return model.Scope{}, auth.ErrSessionNotFound
	}

	sess, err := uc.repo.GetSession(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.ResolveSession: get session: %v", err)
		return model.Scope{}, err
	}
	if sess.Token == "" {
		return model.Scope{}, auth.ErrSessionNotFound
	}

	return model.Scope{
		SessionID: sess.Token,
		Mobile:    sess.Mobile,
	}, nil
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
