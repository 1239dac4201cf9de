package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/skillstream/lms-backend/internal/ports"
)

// SMTPConfig carries the credentials for the outbound mail account. From
// defaults to the authenticated address when left empty.
type SMTPConfig struct {
	Host     string
	Port     int
	Email    string
	Password string
	From     string
}

// SMTPMailer delivers HTML mail over authenticated SMTP. One attempt per
// message; the SMTP handshake result is the only delivery signal.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.From == "" {
		cfg.From = cfg.Email
	}
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(_ context.Context, msg ports.Mail) error {
	e := email.NewEmail()
	e.From = m.cfg.From
	e.To = []string{msg.To}
	e.Subject = msg.Subject
	e.HTML = []byte(msg.Body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Email, m.cfg.Password, m.cfg.Host)
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
