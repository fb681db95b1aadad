package domain

import "errors"

// Sentinel errors shared by services and repositories. Services wrap them with
// detail via fmt.Errorf("%w: ...") so controllers can map them with errors.Is.
var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrForbidden             = errors.New("forbidden")
	ErrEventFull             = errors.New("event is full")
	ErrRegistrationClosed    = errors.New("registration is not open for this event")
	ErrDuplicateRegistration = errors.New("already registered for this event")
	ErrDuplicateUser         = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)
