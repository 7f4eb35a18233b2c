package notification

import (
	"context"
	"log/slog"

	"authd/internal/domain/service"
)

// logMailer writes outgoing mail to the log instead of delivering it.
// Used in development and tests where a Postmark account isn't available.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a Notifier that only logs.
func NewLogMailer(logger *slog.Logger) service.Notifier {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendVerification(ctx context.Context, email, name, code, link string) error {
	m.logger.InfoContext(ctx, "verification email",
		slog.String("to", email),
		slog.String("code", code),
		slog.String("link", link))

	return nil
}

func (m *logMailer) SendPasswordReset(ctx context.Context, email, name, link string) error {
	m.logger.InfoContext(ctx, "password reset email",
		slog.String("to", email),
		slog.String("link", link))

	return nil
}

func (m *logMailer) SendWelcome(ctx context.Context, email, name string) error {
	m.logger.InfoContext(ctx, "welcome email", slog.String("to", email))

	return nil
}
