package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/Orekusandoru/online-store/config"
	"github.com/Orekusandoru/online-store/pkg/logger"
)

// Mailer sends plain-text mail over SMTP. With no host configured it logs
// the message instead, so local setups work without a mail account.
type Mailer struct {
	cfg config.SMTP
}

func New(cfg config.SMTP) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.cfg.Host == "" {
		logger.Info("smtp not configured, logging mail instead",
			"to", to, "subject", subject, "body", body)
		return nil
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		from, to, subject, body,
	))

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(addr, auth, from, []string{to}, msg)
}
