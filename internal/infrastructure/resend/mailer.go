package resendinfra

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fixithub/universe/internal/config"
	"github.com/resend/resend-go/v2"
	"golang.org/x/time/rate"
)

// SandboxSender is Resend's always-available sender. Used as the From
// address when no verified domain is configured, and as the retry sender
// when the configured domain is rejected.
const SandboxSender = "onboarding@resend.dev"

// ErrNotConfigured is returned by NewMailer when the provider API key is
// absent. Callers surface it as a "service not configured" condition.
var ErrNotConfigured = errors.New("email service not configured: RESEND_API_KEY is missing")

// Mailer delivers the transactional emails of the verification flow.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, code, userName string) error
	SendWelcome(ctx context.Context, to, userName string) error
}

// emailSender is the slice of the Resend client the mailer needs.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type mailer struct {
	emails  emailSender
	from    string
	limiter *rate.Limiter
}

// NewMailer builds the Resend-backed mailer. The limiter keeps us under the
// provider's request cap (2 req/s on the standard plan).
func NewMailer(cfg *config.Config) (Mailer, error) {
	if cfg.ResendAPIKey == "" {
		return nil, ErrNotConfigured
	}
	from := cfg.ResendFromEmail
	if from == "" {
		from = SandboxSender
	}
	client := resend.NewClient(cfg.ResendAPIKey)
	return &mailer{
		emails:  client.Emails,
		from:    from,
		limiter: rate.NewLimiter(rate.Limit(2), 2),
	}, nil
}

func (m *mailer) SendVerificationCode(ctx context.Context, to, code, userName string) error {
	return m.dispatch(ctx, &resend.SendEmailRequest{
		From:    fmt.Sprintf("Universe Admin <%s>", m.from),
		To:      []string{to},
		Subject: "Verify Your Universe Account - Action Required",
		Html:    verificationEmailHTML(code, userName),
	})
}

func (m *mailer) SendWelcome(ctx context.Context, to, userName string) error {
	return m.dispatch(ctx, &resend.SendEmailRequest{
		From:    fmt.Sprintf("Universe Team <%s>", m.from),
		To:      []string{to},
		Subject: "Welcome to Universe - Your Account is Ready!",
		Html:    welcomeEmailHTML(userName),
	})
}

// dispatch sends one email. When the provider rejects the configured sending
// domain as unverified, it retries exactly once from the sandbox sender
// before reporting failure.
func (m *mailer) dispatch(ctx context.Context, msg *resend.SendEmailRequest) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("email send: %w", err)
	}
	sent, err := m.emails.SendWithContext(ctx, msg)
	if err == nil {
		slog.Info("email sent", "to", msg.To, "id", sent.Id)
		return nil
	}

	if isDomainNotVerified(err) && !strings.Contains(msg.From, SandboxSender) {
		slog.Warn("sending domain not verified, retrying with sandbox sender", "from", msg.From)
		retry := *msg
		retry.From = rewriteSender(msg.From)
		if sent, retryErr := m.emails.SendWithContext(ctx, &retry); retryErr == nil {
			slog.Info("email sent via sandbox sender", "to", msg.To, "id", sent.Id)
			return nil
		} else {
			err = retryErr
		}
	}
	return fmt.Errorf("email send: %w", err)
}

func isDomainNotVerified(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "domain is not verified")
}

// rewriteSender swaps the address in a "Display Name <addr>" From header for
// the sandbox sender, keeping the display name.
func rewriteSender(from string) string {
	if i := strings.Index(from, "<"); i >= 0 {
		return from[:i] + "<" + SandboxSender + ">"
	}
	return SandboxSender
}
