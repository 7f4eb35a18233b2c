package service

import "context"

// Notifier delivers account-lifecycle email. The contract is fire-and-forget:
// orchestrator operations log and swallow Notifier failures, because delivery
// problems must never downgrade a committed state change into an error.
type Notifier interface {
	// SendVerification delivers the 6-digit one-time code and the clickable
	// verification link in a single message.
	SendVerification(ctx context.Context, email, name, code, link string) error

	// SendPasswordReset delivers the password-reset link.
	SendPasswordReset(ctx context.Context, email, name, link string) error

	// SendWelcome delivers the post-verification welcome message.
	SendWelcome(ctx context.Context, email, name string) error
}
