package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventroster/internal/domain"
)

type mockEmailService struct {
	sent []*domain.CancellationEmailData
	err  error
}

func (m *mockEmailService) SendCancellationConfirmation(ctx context.Context, data *domain.CancellationEmailData) error {
	m.sent = append(m.sent, data)
	return m.err
}

type mockPublisher struct {
	published []domain.CancellationNotice
	err       error
}

func (m *mockPublisher) PublishCancelled(ctx context.Context, notice domain.CancellationNotice) error {
	m.published = append(m.published, notice)
	return m.err
}

func TestCancellationNotifier(t *testing.T) {
	selfNotice := domain.CancellationNotice{
		InscriptionID: "1",
		EventName:     "Conf",
		Username:      "alice",
		CancelledBy:   "alice",
		Email:         "alice@example.com",
	}

	t.Run("fans out to email and publisher", func(t *testing.T) {
		email := &mockEmailService{}
		pub := &mockPublisher{}
		n := NewCancellationNotifier(email, pub, testLogger())

		require.NoError(t, n.NotifyCancelled(context.Background(), selfNotice))
		require.Len(t, email.sent, 1)
		assert.Equal(t, "alice@example.com", email.sent[0].Email)
		assert.True(t, email.sent[0].SelfService)
		require.Len(t, pub.published, 1)
		assert.Equal(t, domain.InscriptionID("1"), pub.published[0].InscriptionID)
	})

	t.Run("skips email without recipient", func(t *testing.T) {
		email := &mockEmailService{}
		pub := &mockPublisher{}
		n := NewCancellationNotifier(email, pub, testLogger())

		notice := selfNotice
		notice.Email = ""
		require.NoError(t, n.NotifyCancelled(context.Background(), notice))
		assert.Empty(t, email.sent)
		assert.Len(t, pub.published, 1)
	})

	t.Run("joins sink errors", func(t *testing.T) {
		emailErr := errors.New("ses down")
		pubErr := errors.New("broker down")
		n := NewCancellationNotifier(&mockEmailService{err: emailErr}, &mockPublisher{err: pubErr}, testLogger())

		err := n.NotifyCancelled(context.Background(), selfNotice)
		require.Error(t, err)
		assert.ErrorIs(t, err, emailErr)
		assert.ErrorIs(t, err, pubErr)
	})

	t.Run("nil sinks are fine", func(t *testing.T) {
		n := NewCancellationNotifier(nil, nil, nil)
		require.NoError(t, n.NotifyCancelled(context.Background(), selfNotice))
	})
}

type mockMailer struct {
	sent []domain.EmailMessage
	err  error
}

func (m *mockMailer) Send(_ context.Context, msg domain.EmailMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type mockRenderer struct {
	name string
	err  error
}

func (m *mockRenderer) Render(templateName string, data any) (string, string, string, error) {
	m.name = templateName
	if m.err != nil {
		return "", "", "", m.err
	}
	return "Subject", "<p>html</p>", "text", nil
}

func TestEmailService_SendCancellationConfirmation(t *testing.T) {
	t.Run("renders and sends", func(t *testing.T) {
		mailer := &mockMailer{}
		renderer := &mockRenderer{}
		svc := NewEmailService(mailer, renderer, testLogger())

		err := svc.SendCancellationConfirmation(context.Background(), &domain.CancellationEmailData{Email: " a@example.com ", EventName: "Conf"})
		require.NoError(t, err)
		assert.Equal(t, "cancellation", renderer.name)
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, domain.EmailMessage{To: "a@example.com", Subject: "Subject", HTML: "<p>html</p>", Text: "text"}, mailer.sent[0])
	})

	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&mockMailer{}, &mockRenderer{}, nil)
		require.Error(t, svc.SendCancellationConfirmation(context.Background(), nil))
	})

	t.Run("missing recipient", func(t *testing.T) {
		svc := NewEmailService(&mockMailer{}, &mockRenderer{}, nil)
		err := svc.SendCancellationConfirmation(context.Background(), &domain.CancellationEmailData{})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("render failure", func(t *testing.T) {
		mailer := &mockMailer{}
		svc := NewEmailService(mailer, &mockRenderer{err: errors.New("bad template")}, nil)
		err := svc.SendCancellationConfirmation(context.Background(), &domain.CancellationEmailData{Email: "a@example.com"})
		require.Error(t, err)
		assert.Empty(t, mailer.sent)
	})

	t.Run("send failure", func(t *testing.T) {
		svc := NewEmailService(&mockMailer{err: errors.New("ses down")}, &mockRenderer{}, nil)
		err := svc.SendCancellationConfirmation(context.Background(), &domain.CancellationEmailData{Email: "a@example.com"})
		require.Error(t, err)
	})
}
