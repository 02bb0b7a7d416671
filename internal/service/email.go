package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(_ context.Context, toEmail, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendBorrowingApprovedNotification(ctx context.Context, borrowerEmail, borrowerName, bookTitle, startDate, dueDate string) error {
	subject := "Your borrowing request was approved"
	body := fmt.Sprintf("Hello %s,\n\nYour request to borrow \"%s\" has been approved.\nThe copy is reserved for you from %s. Please return it by %s.\n\nBest regards,\nThe Library Team",
		borrowerName, bookTitle, startDate, dueDate)
	return s.send(ctx, borrowerEmail, borrowerName, subject, body)
}

func (s *emailService) SendBorrowingDeclinedNotification(ctx context.Context, borrowerEmail, borrowerName, bookTitle, reason string) error {
	subject := "Your borrowing request was declined"
	body := fmt.Sprintf("Hello %s,\n\nUnfortunately your request to borrow \"%s\" has been declined.\n\nReason: %s\n\nBest regards,\nThe Library Team",
		borrowerName, bookTitle, reason)
	return s.send(ctx, borrowerEmail, borrowerName, subject, body)
}

func (s *emailService) SendOverdueReminderNotification(ctx context.Context, borrowerEmail, borrowerName, bookTitle, dueDate string) error {
	subject := "Reminder: overdue book return"
	body := fmt.Sprintf("Dear %s,\n\nThis is a reminder that \"%s\" was due on %s and is now overdue.\nPlease return it as soon as possible.\n\nThank you,\nThe Library Team",
		borrowerName, bookTitle, dueDate)
	return s.send(ctx, borrowerEmail, borrowerName, subject, body)
}
