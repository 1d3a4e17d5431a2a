package domain

import "context"

// EmailMessage is one rendered message for a single recipient.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers rendered messages.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailTemplateRenderer renders a named template into subject, HTML and plain-text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// CancellationEmailData is the payload of the cancellation confirmation.
type CancellationEmailData struct {
	Email       string
	Username    string
	EventName   string
	CancelledBy string
	// SelfService is true when the registrant cancelled their own inscription.
	SelfService bool
}

// EmailService sends the roster's notification emails.
type EmailService interface {
	SendCancellationConfirmation(ctx context.Context, data *CancellationEmailData) error
}
