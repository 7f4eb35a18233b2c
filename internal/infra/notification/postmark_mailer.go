// Package notification implements the Notifier domain service over outgoing mail.
package notification

import (
	"context"
	"fmt"

	"github.com/mrz1836/postmark"

	"authd/config"
	"authd/internal/domain/service"
	"authd/internal/errors"
)

// postmarkMailer sends account-lifecycle email through Postmark's transactional API.
type postmarkMailer struct {
	client      *postmark.Client
	fromEmail   string
	fromName    string
	linkBaseURL string
}

// NewPostmarkMailer creates a Postmark-backed Notifier.
// Both tokens and the sender address are required so missing configuration
// fails at startup instead of silently dropping mail in production.
func NewPostmarkMailer(cfg *config.Config) (service.Notifier, error) {
	mail := cfg.Mail
	if mail == nil || mail.ServerToken == "" {
		return nil, errors.New("mail server token is required")
	}
	if mail.FromEmail == "" {
		return nil, errors.New("mail sender address is required")
	}

	return &postmarkMailer{
		client:      postmark.NewClient(mail.ServerToken, mail.AccountToken),
		fromEmail:   mail.FromEmail,
		fromName:    mail.FromName,
		linkBaseURL: mail.LinkBaseURL,
	}, nil
}

// SendVerification delivers the one-time code and verification link.
func (m *postmarkMailer) SendVerification(ctx context.Context, email, name, code, link string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Your verification code is <strong>%s</strong>. It expires in 24 hours.</p>"+
			"<p>Or verify directly by clicking <a href=\"%s\">this link</a>.</p>",
		htmlName(name), code, link)

	return m.send(ctx, email, "Verify your email address", "email-verification", body)
}

// SendPasswordReset delivers the password-reset link.
func (m *postmarkMailer) SendPasswordReset(ctx context.Context, email, name, link string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>We received a request to reset your password. "+
			"<a href=\"%s\">Reset it here</a>. The link expires in one hour.</p>"+
			"<p>If you didn't request this, you can safely ignore this message.</p>",
		htmlName(name), link)

	return m.send(ctx, email, "Reset your password", "password-reset", body)
}

// SendWelcome delivers the post-verification welcome message.
func (m *postmarkMailer) SendWelcome(ctx context.Context, email, name string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your email address is verified and your account is ready to use.</p>",
		htmlName(name))

	return m.send(ctx, email, "Welcome aboard", "welcome", body)
}

func (m *postmarkMailer) send(ctx context.Context, to, subject, tag, htmlBody string) error {
	from := m.fromEmail
	if m.fromName != "" {
		from = fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail)
	}

	resp, err := m.client.SendEmail(ctx, postmark.Email{
		From:       from,
		To:         to,
		Subject:    subject,
		Tag:        tag,
		HTMLBody:   htmlBody,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Wrap(err, "send email via postmark")
	}
	if resp.ErrorCode > 0 {
		return errors.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message)
	}

	return nil
}

func htmlName(name string) string {
	if name == "" {
		return "there"
	}

	return name
}
