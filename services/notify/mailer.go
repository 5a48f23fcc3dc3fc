package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"qport/config"
	"qport/utils"
)

const (
	sendgridHost = "smtp.sendgrid.net"
	sendgridAddr = "smtp.sendgrid.net:587"
)

// DefaultMailer selects the transport per call: SendGrid SMTP when an API
// key is configured, otherwise the simulated transport, which records every
// message to the logger and optional email log file.
type DefaultMailer struct {
	Provider string
	APIKey   string
	From     string
	LogPath  string
	Logger   *zap.Logger
}

// NewDefaultMailer builds a mailer from the loaded application config.
func NewDefaultMailer() *DefaultMailer {
	return &DefaultMailer{
		Provider: strings.ToLower(config.AppConfig.EmailProvider),
		APIKey:   config.AppConfig.SendgridAPIKey,
		From:     config.AppConfig.EmailFrom,
		LogPath:  config.AppConfig.EmailLogPath,
		Logger:   utils.GetLogger(),
	}
}

// Send dispatches a single message. At most one attempt is made.
func (m *DefaultMailer) Send(ctx context.Context, msg Message) (bool, error) {
	simulate := m.Provider == "simulated" || m.APIKey == ""

	if simulate {
		entry := map[string]interface{}{
			"level":    "info",
			"event":    "demo-email-simulated",
			"provider": m.Provider,
			"to":       msg.To,
			"subject":  msg.Subject,
			"text":     msg.Text,
		}
		m.Logger.Info("demo-email-simulated",
			zap.String("provider", m.Provider),
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		m.writeEmailLog(entry)
		return true, nil
	}

	switch m.Provider {
	case "sendgrid":
		if err := m.sendSMTP(ctx, msg); err != nil {
			return false, err
		}
		return false, nil
	default:
		return false, fmt.Errorf("unsupported email provider: %s", m.Provider)
	}
}

// sendSMTP delivers the message through SendGrid's SMTP relay, authenticating
// with the literal username "apikey" and the API key as password.
func (m *DefaultMailer) sendSMTP(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	recipients := []string{msg.To}
	if msg.Bcc != "" {
		recipients = append(recipients, msg.Bcc)
	}

	auth := smtp.PlainAuth("", "apikey", m.APIKey, sendgridHost)
	if err := smtp.SendMail(sendgridAddr, auth, m.From, recipients, m.buildMessage(msg)); err != nil {
		return fmt.Errorf("sendgrid smtp send failed: %w", err)
	}
	return nil
}

// buildMessage renders a multipart/alternative MIME message with plain-text
// and HTML parts.
func (m *DefaultMailer) buildMessage(msg Message) []byte {
	const boundary = "boundary123"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.Text + "\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.HTML + "\r\n")

	fmt.Fprintf(&b, "--%s--", boundary)
	return []byte(b.String())
}

// writeEmailLog appends a timestamped JSON line to the local email log when
// one is configured. Failures are logged and swallowed.
func (m *DefaultMailer) writeEmailLog(entry map[string]interface{}) {
	if m.LogPath == "" {
		return
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		m.Logger.Warn("Unable to encode simulated email log entry", zap.Error(err))
		return
	}

	absolute, err := filepath.Abs(m.LogPath)
	if err != nil {
		m.Logger.Warn("Unable to resolve simulated email log path", zap.Error(err))
		return
	}

	f, err := os.OpenFile(absolute, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		m.Logger.Warn("Unable to write simulated email log", zap.Error(err))
		return
	}
	defer f.Close()

	line := fmt.Sprintf("%s %s\n", time.Now().UTC().Format(time.RFC3339), payload)
	if _, err := f.WriteString(line); err != nil {
		m.Logger.Warn("Unable to write simulated email log", zap.Error(err))
	}
}
