package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, name, bookTitle, dueDate string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Overdue book reminder")

	body := fmt.Sprintf("Hello %s,\n\nOur records show that \"%s\" was due back on %s and has not been returned yet.\n\nPlease return it at your earliest convenience.\n\nBest regards,\nThe Library Team", name, bookTitle, dueDate)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	return nil
}
