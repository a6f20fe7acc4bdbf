// Package notification delivers license keys to purchasers. Delivery
// is fire-and-forget: a failed send is the caller's to log, never to
// retry or roll back.
package notification

import (
	"context"
	"fmt"
	"log"
	"net/smtp"

	"gfocus/internal/config"
)

// Notifier sends a license key to a purchaser.
type Notifier interface {
	SendLicenseKey(ctx context.Context, email, tier, licenseKey string) error
}

// FromEnv picks the SMTP notifier when SMTP_HOST is configured and
// falls back to log-only delivery otherwise.
func FromEnv() Notifier {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return NewLogNotifier()
	}
	return NewSMTPNotifier(
		host,
		config.GetEnv("SMTP_PORT", "587"),
		config.GetEnv("SMTP_USERNAME", ""),
		config.GetEnv("SMTP_PASSWORD", ""),
		config.GetEnv("SMTP_FROM", "noreply@gfocus.app"),
	)
}

// LogNotifier logs deliveries instead of sending mail.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) SendLicenseKey(ctx context.Context, email, tier, licenseKey string) error {
	log.Printf("notify %s: %s license %s", email, tier, licenseKey)
	return nil
}

// SMTPNotifier delivers license keys by email.
type SMTPNotifier struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPNotifier(host, port, username, password, from string) *SMTPNotifier {
	return &SMTPNotifier{host: host, port: port, username: username, password: password, from: from}
}

func (n *SMTPNotifier) SendLicenseKey(ctx context.Context, email, tier, licenseKey string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Your GFocus %s license\r\n\r\n"+
		"Thanks for your purchase!\r\n\r\nYour license key: %s\r\n", n.from, email, tier, licenseKey)

	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}
	return smtp.SendMail(n.host+":"+n.port, auth, n.from, []string{email}, []byte(msg))
}
