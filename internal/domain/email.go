package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeEmailData holds data for the signup welcome email.
type WelcomeEmailData struct {
	Email    string
	Username string
	Role     Role
}

// RegistrationEmailData holds data for registration status emails.
type RegistrationEmailData struct {
	Email     string
	Username  string
	EventName string
	EventCode string
	EventDate string
	TeamName  string
	Reason    string
}

// EventCancelledEmailData holds data for the email sent to registrants of a cancelled event.
type EventCancelledEmailData struct {
	Email     string
	Username  string
	EventName string
	EventCode string
	Reason    string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWelcome(ctx context.Context, data *WelcomeEmailData) error
	SendRegistrationConfirmed(ctx context.Context, data *RegistrationEmailData) error
	SendRegistrationRejected(ctx context.Context, data *RegistrationEmailData) error
	SendEventCancelled(ctx context.Context, data *EventCancelledEmailData) error
}
