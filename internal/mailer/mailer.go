package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
	"chirp/internal/config"
)

type Mailer interface {
	SendPasswordReset(email, resetLink string) error
}

type SMTPMailer struct {
	cfg *config.Config
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendPasswordReset отправляет ссылку сброса пароля. В режиме LOG_EMAIL_ONLY
// письмо не уходит, ссылка пишется в лог (для локальной разработки).
func (m *SMTPMailer) SendPasswordReset(email, resetLink string) error {
	if m.cfg.SMTP.LogOnly {
		log.Printf("Ссылка сброса пароля для %s: %s", email, resetLink)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.SMTP.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Password reset request")
	msg.SetBody("text/plain", fmt.Sprintf("Reset your password using this link: %s", resetLink))

	dialer := gomail.NewDialer(m.cfg.SMTP.Host, m.cfg.SMTP.Port, m.cfg.SMTP.User, m.cfg.SMTP.Password)

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("ошибка при отправке письма: %w", err)
	}

	return nil
}
