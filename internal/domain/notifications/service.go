package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Mailer delivers a single message. Implementations live in platform/email.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

type Service struct {
	mailer Mailer
	from   string
}

func New(mailer Mailer, from string) *Service {
	return &Service{mailer: mailer, from: from}
}

// Dispatch sends asynchronously. Delivery failure is logged and never
// propagates to the operation that triggered it.
func (s *Service) Dispatch(to, subject, body string) {
	if s == nil || s.mailer == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.mailer.Send(ctx, s.from, to, subject, body); err != nil {
			slog.Warn("notification dispatch failed", "to", to, "subject", subject, "err", err)
		}
	}()
}

// SendPasswordOTP mails the one-time code used by the password recovery flow.
func (s *Service) SendPasswordOTP(to string, otp int) {
	s.Dispatch(to, "Password Recovery", otpBody(otp))
}

func otpBody(otp int) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body>
  <p>Dear User,</p>
  <p>Use the following OTP to complete your action. This OTP is valid for the next 5 minutes.</p>
  <p style="font-size:24px;font-weight:bold;letter-spacing:3px;">%04d</p>
  <p>If you did not request this, please ignore this email.</p>
  <p>Please do not share this code with anyone for security reasons.</p>
</body>
</html>`, otp)
}
