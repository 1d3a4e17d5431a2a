package domain

import (
	"context"
	"time"
)

// CancellationNotice describes a cancelled inscription.
type CancellationNotice struct {
	InscriptionID InscriptionID `json:"inscription_id"`
	EventID       string        `json:"event_id"`
	EventName     string        `json:"event_name"`
	Username      string        `json:"username"`
	CancelledBy   string        `json:"cancelled_by"`
	// Email of the registrant when known; email notices are skipped without it.
	Email       string    `json:"-"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// CancellationNotifier is told about cancellations after they succeeded remotely.
type CancellationNotifier interface {
	NotifyCancelled(ctx context.Context, notice CancellationNotice) error
}

// CancellationPublisher publishes cancellation events to a message broker.
type CancellationPublisher interface {
	PublishCancelled(ctx context.Context, notice CancellationNotice) error
}
