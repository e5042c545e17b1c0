package http

import (
	"time"

	"voltassist/internal/auth"
)

// --- Request DTOs ---

type requestOTPReq struct {
	Mobile string `json:"mobile" binding:"required,min=10,max=15"`
}

func (r requestOTPReq) toInput() auth.RequestOTPInput {
	return auth.RequestOTPInput{Mobile: r.Mobile}
}

type verifyOTPReq struct {
	Mobile string `json:"mobile" binding:"required,min=10,max=15"`
	Code   string `json:"code"   binding:"required,len=6"`
}

func (r verifyOTPReq) toInput() auth.VerifyOTPInput {
	return auth.VerifyOTPInput{Mobile: r.Mobile, Code: r.Code}
}

// --- Response DTOs ---

type sessionResp struct {
	Token     string    `json:"token"`
	Mobile    string    `json:"mobile"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *handler) newSessionResp(sess auth.Session) sessionResp {
	return sessionResp{
		Token:     sess.Token,
		Mobile:    sess.Mobile,
		ExpiresAt: sess.ExpiresAt,
	}
}
