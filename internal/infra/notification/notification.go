package notification

import (
	"log/slog"

	"authd/config"
	"authd/internal/domain/service"
)

// NewNotifier selects the mailer implementation from configuration.
// Anything other than "postmark" gets the log-only mailer, so development
// environments need no mail credentials at all.
func NewNotifier(cfg *config.Config, logger *slog.Logger) (service.Notifier, error) {
	if cfg.Mail != nil && cfg.Mail.Provider == "postmark" {
		return NewPostmarkMailer(cfg)
	}

	return NewLogMailer(logger), nil
}
