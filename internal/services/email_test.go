package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playerone/internal/domain"
)

type sentMail struct {
	to, subject, html, text string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, html: html, text: text})
	return nil
}

type fakeRenderer struct {
	names []string
	err   error
}

func (r *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	if r.err != nil {
		return "", "", "", r.err
	}
	r.names = append(r.names, templateName)
	return "subject:" + templateName, "<p>" + templateName + "</p>", templateName, nil
}

func TestEmailService(t *testing.T) {
	ctx := context.Background()
	reg := &domain.RegistrationEmailData{Email: "p@example.com", Username: "p", EventName: "Cup", EventCode: "EVT-20260601-0001"}

	t.Run("each message uses its template", func(t *testing.T) {
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{}
		svc := NewEmailService(mailer, renderer, discardLogger())

		require.NoError(t, svc.SendWelcome(ctx, &domain.WelcomeEmailData{Email: "w@example.com", Username: "w", Role: domain.RolePlayer}))
		require.NoError(t, svc.SendRegistrationConfirmed(ctx, reg))
		require.NoError(t, svc.SendRegistrationRejected(ctx, reg))
		require.NoError(t, svc.SendEventCancelled(ctx, &domain.EventCancelledEmailData{Email: "c@example.com", EventName: "Cup"}))

		assert.Equal(t, []string{"welcome", "registration_confirmed", "registration_rejected", "event_cancelled"}, renderer.names)
		require.Len(t, mailer.sent, 4)
		assert.Equal(t, sentMail{to: "w@example.com", subject: "subject:welcome", html: "<p>welcome</p>", text: "welcome"}, mailer.sent[0])
		assert.Equal(t, "c@example.com", mailer.sent[3].to)
	})

	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{}, discardLogger())
		require.Error(t, svc.SendWelcome(ctx, nil))
		require.Error(t, svc.SendRegistrationConfirmed(ctx, nil))
		require.Error(t, svc.SendRegistrationRejected(ctx, nil))
		require.Error(t, svc.SendEventCancelled(ctx, nil))
	})

	t.Run("missing recipient", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewEmailService(mailer, &fakeRenderer{}, discardLogger())
		require.Error(t, svc.SendRegistrationConfirmed(ctx, &domain.RegistrationEmailData{}))
		assert.Empty(t, mailer.sent)
	})

	t.Run("render and send failures are wrapped", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{err: errors.New("bad template")}, discardLogger())
		err := svc.SendRegistrationRejected(ctx, reg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "render registration_rejected")

		svc = NewEmailService(&fakeMailer{err: errors.New("throttled")}, &fakeRenderer{}, discardLogger())
		err = svc.SendRegistrationRejected(ctx, reg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "throttled")
	})
}
