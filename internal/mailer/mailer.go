package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"portfolioCPT/internal/config"
)

type Mailer interface {
	SendVerificationCode(to, code string) error
	SendContactMessage(name, email, message string) error
}

type SMTPMailer struct {
	cfg config.SMTP
}

func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) dialer() *gomail.Dialer {
	return gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
}

// SendVerificationCode отправляет одноразовый код подтверждения админу
func (m *SMTPMailer) SendVerificationCode(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Admin Verification Code")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Ваш код подтверждения: <b>%s</b></p><p>Код действует 10 минут.</p>", code))

	if err := m.dialer().DialAndSend(msg); err != nil {
		return fmt.Errorf("ошибка при отправке кода подтверждения: %w", err)
	}

	return nil
}

// SendContactMessage пересылает сообщение с формы обратной связи на почту владельца
func (m *SMTPMailer) SendContactMessage(name, email, message string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Reply-To", email)
	msg.SetHeader("Subject", fmt.Sprintf("New Contact Form Submission: %s", name))
	msg.SetBody("text/html", fmt.Sprintf(
		"<p><b>Имя:</b> %s</p><p><b>Email:</b> %s</p><p>%s</p>", name, email, message))

	if err := m.dialer().DialAndSend(msg); err != nil {
		return fmt.Errorf("ошибка при отправке сообщения: %w", err)
	}

	return nil
}
