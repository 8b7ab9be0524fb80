package service

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/JemAndrew/JemAndrewWebsite/internal/config"
	"github.com/rs/zerolog"
)

// Mailer forwards a contact message to the site owner
type Mailer interface {
	Send(name, email, subject, message string) error
}

// smtpMailer delivers mail over SMTP with a dial timeout. No delivery
// library exists in this stack; plain net/smtp is enough for a single
// notification mail per submission.
type smtpMailer struct {
	cfg *config.ContactConfig
	log zerolog.Logger
}

func newSMTPMailer(cfg *config.ContactConfig, log zerolog.Logger) *smtpMailer {
	return &smtpMailer{
		cfg: cfg,
		log: log.With().Str("component", "mailer").Logger(),
	}
}

// Send forwards the submission to the configured recipient. An
// unconfigured transport is not an error: the message is already
// persisted, delivery is best effort.
func (m *smtpMailer) Send(name, email, subject, message string) error {
	if m.cfg.SMTPHost == "" || m.cfg.RecipientEmail == "" {
		m.log.Debug().Msg("SMTP not configured, skipping delivery")
		return nil
	}

	addr := net.JoinHostPort(m.cfg.SMTPHost, m.cfg.SMTPPort)

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", m.cfg.SMTPUser)
	fmt.Fprintf(&body, "To: %s\r\n", m.cfg.RecipientEmail)
	fmt.Fprintf(&body, "Subject: Portfolio Contact: %s\r\n", sanitizeHeader(subject))
	fmt.Fprintf(&body, "Reply-To: %s\r\n", sanitizeHeader(email))
	body.WriteString("\r\n")
	fmt.Fprintf(&body, "From: %s (%s)\r\n\r\n%s\r\n", name, email, message)

	conn, err := net.DialTimeout("tcp", addr, m.cfg.SendTimeout)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.cfg.SMTPHost)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.SMTPHost}); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if m.cfg.SMTPUser != "" {
		auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPHost)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %w", err)
		}
	}

	if err := client.Mail(m.cfg.SMTPUser); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(m.cfg.RecipientEmail); err != nil {
		return fmt.Errorf("RCPT TO failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err := w.Write([]byte(body.String())); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	return client.Quit()
}

// sanitizeHeader strips CR/LF to block header injection
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", "")
}
