package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventroster/internal/domain"
)

type cancellationNotifier struct {
	email     domain.EmailService
	publisher domain.CancellationPublisher
	logger    *slog.Logger
}

// NewCancellationNotifier fans a cancellation out to email and the message broker.
// Either sink may be nil. Notices without a registrant email skip the email sink.
func NewCancellationNotifier(email domain.EmailService, publisher domain.CancellationPublisher, logger *slog.Logger) domain.CancellationNotifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &cancellationNotifier{email: email, publisher: publisher, logger: logger}
}

func (n *cancellationNotifier) NotifyCancelled(ctx context.Context, notice domain.CancellationNotice) error {
	var errs []error

	if n.email != nil && notice.Email != "" {
		err := n.email.SendCancellationConfirmation(ctx, &domain.CancellationEmailData{
			Email:       notice.Email,
			Username:    notice.Username,
			EventName:   notice.EventName,
			CancelledBy: notice.CancelledBy,
			SelfService: notice.CancelledBy == notice.Username,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("email: %w", err))
		}
	}

	if n.publisher != nil {
		if err := n.publisher.PublishCancelled(ctx, notice); err != nil {
			errs = append(errs, fmt.Errorf("publish: %w", err))
		}
	}

	if len(errs) > 0 {
		n.logger.WarnContext(ctx, "cancellation notice incomplete", "inscription_id", notice.InscriptionID, "errors", len(errs))
	}
	return errors.Join(errs...)
}
