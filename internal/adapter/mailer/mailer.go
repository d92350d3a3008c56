// Package mailer sends transactional mail over SMTP.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/socialblog/backend/internal/config"
)

// Mailer delivers messages through a single SMTP relay.
type Mailer struct {
	addr     string
	from     string
	pageName string
	auth     smtp.Auth
}

// New creates a mailer from config. Auth is skipped when no username is
// configured (local relay, mailhog in dev).
func New(cfg config.MailConfig) *Mailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &Mailer{
		addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from:     cfg.From,
		pageName: cfg.PageName,
		auth:     auth,
	}
}

// SendPasswordReset mails the reset token to the recipient.
func (m *Mailer) SendPasswordReset(ctx context.Context, recipient, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("%s: password reset", m.pageName)
	body := fmt.Sprintf(
		"A password reset was requested for your %s account.\r\n\r\n"+
			"Reset token: %s\r\n\r\n"+
			"The token expires in 24 hours. If you did not request this, ignore this message.\r\n",
		m.pageName, token,
	)

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + recipient,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", recipient, err)
	}
	return nil
}
