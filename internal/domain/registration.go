package domain

import (
	"context"
	"time"
)

// RegistrationStatus is the state of a player's registration for an event.
type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "PENDING"
	RegistrationConfirmed RegistrationStatus = "CONFIRMED"
	RegistrationRejected  RegistrationStatus = "REJECTED"
	RegistrationCancelled RegistrationStatus = "CANCELLED"
)

// Active reports whether the registration holds a slot.
func (s RegistrationStatus) Active() bool {
	return s == RegistrationPending || s == RegistrationConfirmed
}

// UserCancellationReason is recorded when a player withdraws their own registration.
const UserCancellationReason = "Cancelled by user"

// EventRegistration links a user to an event.
// EventName, Username and UserEmail are read-only projections filled on reads.
// swagger:model EventRegistration
type EventRegistration struct {
	ID                 string             `json:"id"`
	EventID            string             `json:"event_id"`
	EventName          string             `json:"event_name,omitempty"`
	UserID             string             `json:"user_id"`
	Username           string             `json:"username,omitempty"`
	UserEmail          string             `json:"user_email,omitempty"`
	Status             RegistrationStatus `json:"status"`
	TeamName           string             `json:"team_name,omitempty"`
	AdditionalNotes    string             `json:"additional_notes,omitempty"`
	TransactionID      *string            `json:"transaction_id,omitempty"`
	AmountPaid         *float64           `json:"amount_paid,omitempty"`
	PaymentVerified    bool               `json:"payment_verified"`
	RegisteredAt       time.Time          `json:"registered_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	CancelledAt        *time.Time         `json:"cancelled_at,omitempty"`
	CancellationReason *string            `json:"cancellation_reason,omitempty"`
}

// RegistrationRequest carries the player-supplied fields of a registration.
type RegistrationRequest struct {
	TeamName        string
	AdditionalNotes string
	TransactionID   string
}

// RegistrationStatusChange describes a status transition written by UpdateStatus.
type RegistrationStatusChange struct {
	Status             RegistrationStatus
	CancelledAt        *time.Time
	CancellationReason *string
	PaymentVerified    Optional[bool]
	UpdatedAt          time.Time
}

// EventRegistrationRepository defines the interface for registration storage
type EventRegistrationRepository interface {
	// Create inserts the registration. A second active registration for the same
	// event and user yields ErrDuplicateRegistration.
	Create(ctx context.Context, reg *EventRegistration) error
	GetByID(ctx context.Context, id string) (*EventRegistration, error)
	// GetByIDForUpdate loads the registration and locks its row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*EventRegistration, error)
	ExistsActive(ctx context.Context, eventID, userID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, change RegistrationStatusChange) (*EventRegistration, error)
	ListByEventID(ctx context.Context, eventID string, params PaginationParams) ([]*EventRegistration, int, error)
	ListByEventIDAndStatus(ctx context.Context, eventID string, statuses ...RegistrationStatus) ([]*EventRegistration, error)
	ListByUserID(ctx context.Context, userID string, params PaginationParams) ([]*EventRegistration, int, error)
}

// RegistrationService coordinates registrations against event capacity.
type RegistrationService interface {
	Register(ctx context.Context, p Principal, eventID string, req RegistrationRequest) (*EventRegistration, error)
	CancelRegistration(ctx context.Context, p Principal, registrationID string) (*EventRegistration, error)
	ConfirmRegistration(ctx context.Context, p Principal, registrationID string) (*EventRegistration, error)
	RejectRegistration(ctx context.Context, p Principal, registrationID, reason string) (*EventRegistration, error)
	ListEventRegistrations(ctx context.Context, p Principal, eventID string, params PaginationParams) ([]*EventRegistration, int, error)
	ListConfirmedRegistrations(ctx context.Context, p Principal, eventID string) ([]*EventRegistration, error)
	ListMyRegistrations(ctx context.Context, p Principal, params PaginationParams) ([]*EventRegistration, int, error)
	GetRegistration(ctx context.Context, p Principal, registrationID string) (*EventRegistration, error)
	IsRegistered(ctx context.Context, p Principal, eventID string) (bool, error)
}
