package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"eventroster/internal/domain"
)

const cancellationTemplate = "cancellation"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService renders templates with renderer and hands the result to mailer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &emailService{mailer: mailer, renderer: renderer, logger: logger.With("component", "email")}
}

func (s *emailService) SendCancellationConfirmation(ctx context.Context, data *domain.CancellationEmailData) error {
	if data == nil {
		return errors.New("cancellation email data is nil")
	}
	to := strings.TrimSpace(data.Email)
	if to == "" {
		return fmt.Errorf("%w: recipient email is required", domain.ErrInvalidInput)
	}
	subject, htmlBody, textBody, err := s.renderer.Render(cancellationTemplate, data)
	if err != nil {
		return fmt.Errorf("render %s email: %w", cancellationTemplate, err)
	}
	msg := domain.EmailMessage{To: to, Subject: subject, HTML: htmlBody, Text: textBody}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send %s email: %w", cancellationTemplate, err)
	}
	s.logger.InfoContext(ctx, "cancellation email sent", "username", data.Username, "event_name", data.EventName)
	return nil
}
