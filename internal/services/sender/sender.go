// Package services turns broker events into e-mails: trial expiry
// warnings, password reset links and contact form notifications.
package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chatco/chatco-backend/internal/lib/sl"
	"github.com/chatco/chatco-backend/internal/lib/smtp"
	"github.com/chatco/chatco-backend/internal/models"
)

// SenderService consumes notification events and sends the e-mails.
type SenderService struct {
	transport  smtp.TransportInterface
	ownerEmail string
	log        *slog.Logger
}

// NewSenderService creates a SenderService. ownerEmail receives the
// contact form notifications.
func NewSenderService(transport smtp.TransportInterface, ownerEmail string, log *slog.Logger) *SenderService {
	return &SenderService{
		transport:  transport,
		ownerEmail: ownerEmail,
		log:        log,
	}
}

// SendTrialExpiryNotice handles one trial expiry event.
func (s *SenderService) SendTrialExpiryNotice(body []byte) error {
	var event models.TrialExpiryEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{event.Email}
	subject := "Jūsų bandomasis laikotarpis baigiasi šiandien"
	bodyText := fmt.Sprintf("Sveiki, %s!\n\nJūsų nemokamas Chatco bandomasis laikotarpis baigiasi šiandien.\n\nNorėdami toliau naudotis pokalbiais, pasirinkite planą svetainėje.",
		event.Username)

	return s.sendEmail(to, subject, bodyText)
}

// SendPasswordResetLink handles one password reset event.
func (s *SenderService) SendPasswordResetLink(body []byte) error {
	var event models.PasswordResetEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{event.Email}
	subject := "Slaptažodžio atkūrimas"
	bodyText := fmt.Sprintf("Sveiki!\n\nGavome prašymą atkurti jūsų Chatco slaptažodį.\n\nJūsų atkūrimo kodas: %s\n\nKodas galioja vieną valandą. Jei prašymo nepateikėte, šį laišką ignoruokite.",
		event.Token)

	return s.sendEmail(to, subject, bodyText)
}

// SendContactNotification handles one contact submission event and
// notifies the site owner.
func (s *SenderService) SendContactNotification(body []byte) error {
	var event models.ContactSubmissionEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{s.ownerEmail}
	subject := "Nauja žinutė iš kontaktų formos"
	bodyText := fmt.Sprintf("Gauta nauja žinutė.\n\nVardas: %s\nEl. paštas: %s\n\nŽinutė:\n%s",
		event.Name, event.Email, event.Message)

	return s.sendEmail(to, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", "recipient", addr, "error", sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", "to", to)
	return nil
}
