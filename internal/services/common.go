package services

import (
	"errors"
	"fmt"
	"time"

	"playerone/internal/domain"
)

// Option customizes a service at construction.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for status and window decisions.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var domainErrors = []error{
	domain.ErrNotFound,
	domain.ErrInvalidInput,
	domain.ErrForbidden,
	domain.ErrEventFull,
	domain.ErrRegistrationClosed,
	domain.ErrDuplicateRegistration,
	domain.ErrDuplicateUser,
	domain.ErrInvalidCredentials,
}

// wrapErr prefixes unexpected errors with op. Domain errors pass through unchanged
// so their message can be shown to the client.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, de := range domainErrors {
		if errors.Is(err, de) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// notFound names the missing entity when a repository reports ErrNotFound.
func notFound(kind, id string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return err
}

func forbidden(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrForbidden, msg)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func views(events []*domain.Event, now time.Time) []*domain.EventView {
	out := make([]*domain.EventView, len(events))
	for i, e := range events {
		out[i] = e.View(now)
	}
	return out
}
