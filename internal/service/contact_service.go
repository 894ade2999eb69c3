package service

import (
	"portfolioCPT/internal/mailer"
)

type ContactService interface {
	SendMessage(name, email, message string) error
}

type contactService struct {
	mail mailer.Mailer
}

func NewContactService(mail mailer.Mailer) ContactService {
	return &contactService{mail: mail}
}

// SendMessage пересылает сообщение с формы обратной связи, ничего не сохраняя
func (s *contactService) SendMessage(name, email, message string) error {
	return s.mail.SendContactMessage(name, email, message)
}
