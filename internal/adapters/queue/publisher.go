// Package queue publishes roster events to RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"eventroster/internal/domain"
)

// CancelledQueue is the durable queue that receives cancellation events.
const CancelledQueue = "inscription.cancelled"

// InscriptionCancelledEvent is the message body published for each cancellation.
type InscriptionCancelledEvent struct {
	InscriptionID string `json:"inscription_id"`
	EventID       string `json:"event_id"`
	EventName     string `json:"event_name"`
	Username      string `json:"username"`
	CancelledBy   string `json:"cancelled_by"`
	CancelledAt   string `json:"cancelled_at"`
}

// NewInscriptionCancelledEvent maps a notice to its wire message.
func NewInscriptionCancelledEvent(n domain.CancellationNotice) InscriptionCancelledEvent {
	return InscriptionCancelledEvent{
		InscriptionID: n.InscriptionID.String(),
		EventID:       n.EventID,
		EventName:     n.EventName,
		Username:      n.Username,
		CancelledBy:   n.CancelledBy,
		CancelledAt:   n.CancelledAt.UTC().Format(time.RFC3339),
	}
}

// DefaultPublishTimeout bounds one publish, broker dial and handshake included.
const DefaultPublishTimeout = 5 * time.Second

type amqpPublisher struct {
	url     string
	queue   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewPublisher returns a CancellationPublisher that dials url for each message. Messages are
// persistent and the queue is declared durable before publishing. Each publish, connection setup
// included, gives up after timeout or when its context ends.
func NewPublisher(url string, timeout time.Duration, logger *slog.Logger) domain.CancellationPublisher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &amqpPublisher{url: url, queue: CancelledQueue, timeout: timeout, logger: logger}
}

// dial opens a connection whose TCP dial follows ctx and whose AMQP handshake must finish before
// the publish deadline. The client clears the socket deadline once the handshake completes.
func (p *amqpPublisher) dial(ctx context.Context) (*amqp.Connection, error) {
	deadline, _ := ctx.Deadline()
	return amqp.DialConfig(p.url, amqp.Config{
		Dial: func(network, addr string) (net.Conn, error) {
			var d net.Dialer
			conn, err := d.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			if err := conn.SetDeadline(deadline); err != nil {
				_ = conn.Close()
				return nil, err
			}
			return conn, nil
		},
	})
}

func (p *amqpPublisher) PublishCancelled(ctx context.Context, notice domain.CancellationNotice) error {
	body, err := json.Marshal(NewInscriptionCancelledEvent(notice))
	if err != nil {
		return fmt.Errorf("marshal cancellation event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.dial(ctx)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	p.logger.DebugContext(ctx, "cancellation published", "queue", p.queue, "inscription_id", notice.InscriptionID)
	return nil
}
