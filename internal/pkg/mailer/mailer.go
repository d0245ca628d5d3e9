package mailer

import (
	"fmt"
	"net/smtp"
)

// Mailer delivers onboarding credentials to a freshly registered CPO.
type Mailer interface {
	SendCredentials(to, username, password string) error
}

type smtpMailer struct {
	host     string
	port     string
	username string
	password string
}

func NewSMTP(host, port, username, password string) Mailer {
	return &smtpMailer{host: host, port: port, username: username, password: password}
}

func (m *smtpMailer) SendCredentials(to, username, password string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Your Charging Network Credentials\r\n\r\n"+
			"Username: %s\r\nTemporary password: %s\r\n",
		m.username, to, username, password,
	)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.username, []string{to}, []byte(msg))
}

// Noop is used when SMTP is not configured (local development, tests).
type Noop struct{}

func (Noop) SendCredentials(string, string, string) error { return nil }
