package services

import (
	"context"
	"fmt"
	"log/slog"

	"playerone/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// send renders templateName with data and delivers it to the given address.
func (s *emailService) send(ctx context.Context, templateName, to string, data any) error {
	if to == "" {
		return fmt.Errorf("%s email has no recipient", templateName)
	}
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	s.logger.Info("email sent", "template", templateName, "to", to)
	return nil
}

func (s *emailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome email data is nil")
	}
	return s.send(ctx, "welcome", data.Email, data)
}

func (s *emailService) SendRegistrationConfirmed(ctx context.Context, data *domain.RegistrationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration email data is nil")
	}
	return s.send(ctx, "registration_confirmed", data.Email, data)
}

func (s *emailService) SendRegistrationRejected(ctx context.Context, data *domain.RegistrationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration email data is nil")
	}
	return s.send(ctx, "registration_rejected", data.Email, data)
}

func (s *emailService) SendEventCancelled(ctx context.Context, data *domain.EventCancelledEmailData) error {
	if data == nil {
		return fmt.Errorf("event cancelled email data is nil")
	}
	return s.send(ctx, "event_cancelled", data.Email, data)
}
