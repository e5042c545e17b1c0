// Package sms sends text messages to customers. The default implementation
// logs the message instead of hitting a gateway, which is enough for
// development and demo environments.
package sms

import (
	"context"

	"voltassist/pkg/log"
)

// Sender delivers a text message to a mobile number.
type Sender interface {
	Send(ctx context.Context, mobile, message string) error
}

type logSender struct {
	l log.Logger
}

// NewLogSender returns a Sender that writes messages to the log.
func NewLogSender(l log.Logger) Sender {
	return &logSender{l: l}
}

func (s *logSender) Send(ctx context.Context, mobile, message string) error {
	s.l.Infof(ctx, "sms.Send: to=%s message=%q", mobile, message)
	return nil
}
