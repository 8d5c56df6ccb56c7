// Package deliver holds the optional delivery sinks. Each sink is a no-op
// returning ErrNotConfigured when its settings are incomplete; the run
// never depends on a sink succeeding.
package deliver

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/thomaskoefod/newsbrief/internal/config"
)

// ErrNotConfigured marks a sink whose required settings are missing. The
// caller skips the sink; it is not a delivery failure.
var ErrNotConfigured = errors.New("sink not configured")

type Mailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
	to       []string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		user:     cfg.SMTP.User,
		password: cfg.SMTP.Password,
		from:     cfg.EmailFrom,
		to:       cfg.EmailTo,
	}
}

// Send delivers one HTML message to every recipient over an authenticated
// STARTTLS session.
func (m *Mailer) Send(subject, htmlBody string) error {
	if m.host == "" || m.user == "" || m.password == "" || len(m.to) == 0 {
		return ErrNotConfigured
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s",
		m.from, strings.Join(m.to, ", "), subject, htmlBody)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	if err := smtp.SendMail(addr, auth, m.from, m.to, []byte(msg)); err != nil {
		return fmt.Errorf("sending mail via %s: %w", addr, err)
	}
	return nil
}
