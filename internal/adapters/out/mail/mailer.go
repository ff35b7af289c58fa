// Package mail delivers notification e-mails over SMTP.
package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"
)

type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	Recipients []string
}

// Mailer sends every notification to the configured recipients.
// With no host or no recipients it is disabled and Send does nothing.
type Mailer struct {
	cfg Config
}

func NewMailer(cfg Config) *Mailer {
	recipients := make([]string, 0, len(cfg.Recipients))
	for _, r := range cfg.Recipients {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	cfg.Recipients = recipients
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Enabled() bool {
	return m.cfg.Host != "" && m.cfg.From != "" && len(m.cfg.Recipients) > 0
}

func (m *Mailer) Send(ctx context.Context, subject, htmlBody string) error {
	if !m.Enabled() {
		return nil
	}

	msg, err := m.message(subject, htmlBody)
	if err != nil {
		return err
	}

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15 * time.Second),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.Username),
			gomail.WithPassword(m.cfg.Password),
		)
	}

	client, err := gomail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (m *Mailer) message(subject, htmlBody string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.cfg.From, err)
	}
	if err := msg.To(m.cfg.Recipients...); err != nil {
		return nil, fmt.Errorf("invalid recipients: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)
	return msg, nil
}
