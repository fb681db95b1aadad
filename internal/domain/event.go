package domain

import (
	"context"
	"fmt"
	"time"
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	StatusDraft              EventStatus = "DRAFT"
	StatusUpcoming           EventStatus = "UPCOMING"
	StatusRegistrationOpen   EventStatus = "REGISTRATION_OPEN"
	StatusRegistrationClosed EventStatus = "REGISTRATION_CLOSED"
	StatusOngoing            EventStatus = "ONGOING"
	StatusCompleted          EventStatus = "COMPLETED"
	StatusCancelled          EventStatus = "CANCELLED"
)

// Terminal reports whether no further transition is possible.
func (s EventStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Publishable reports whether Publish may (re)compute the status from the registration window.
func (s EventStatus) Publishable() bool {
	switch s {
	case StatusDraft, StatusUpcoming, StatusRegistrationOpen, StatusRegistrationClosed:
		return true
	}
	return false
}

// ParticipationType is the team format of an event.
type ParticipationType string

const (
	ParticipationSolo  ParticipationType = "SOLO"
	ParticipationDuo   ParticipationType = "DUO"
	ParticipationSquad ParticipationType = "SQUAD"
)

// Visibility controls whether an event shows up in public listings.
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// Event represents a tournament published by an organizer.
// EventDate is a calendar date stored at midnight UTC; StartTime and EndTime are "HH:MM".
// swagger:model Event
type Event struct {
	ID                    string            `json:"id"`
	EventCode             string            `json:"event_code"`
	Name                  string            `json:"event_name"`
	GameName              string            `json:"game_name"`
	Description           string            `json:"description"`
	EventDate             time.Time         `json:"event_date"`
	StartTime             string            `json:"event_start_time"`
	EndTime               string            `json:"event_end_time"`
	RegistrationOpenDate  time.Time         `json:"registration_open_date"`
	RegistrationCloseDate time.Time         `json:"registration_close_date"`
	ParticipationType     ParticipationType `json:"participation_type"`
	TeamSize              int               `json:"team_size"`
	MaxParticipants       int               `json:"max_participants"`
	MinParticipants       int               `json:"min_participants"`
	AllowedRanks          string            `json:"allowed_ranks"`
	Platform              string            `json:"platform"`
	IsPaid                bool              `json:"is_paid"`
	EntryFee              float64           `json:"entry_fee"`
	PrizePool             float64           `json:"prize_pool"`
	PrizeDistribution     string            `json:"prize_distribution"`
	RefundPolicy          string            `json:"refund_policy"`
	Map                   string            `json:"map"`
	Mode                  string            `json:"mode"`
	ServerRegion          string            `json:"server_region"`
	RoomID                string            `json:"room_id"`
	RoomPassword          string            `json:"room_password"`
	Rules                 string            `json:"rules"`
	OrganizerID           string            `json:"organizer_id"`
	OrganizerName         string            `json:"organizer_name"`
	Contact               string            `json:"contact"`
	SlotsFilled           int               `json:"slots_filled"`
	Status                EventStatus       `json:"status"`
	ThumbnailURL          string            `json:"thumbnail_url"`
	LiveStreamLink        string            `json:"live_stream_link"`
	Remarks               string            `json:"remarks"`
	Visibility            Visibility        `json:"visibility"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

// IsFull reports whether every slot is taken.
func (e *Event) IsFull() bool {
	return e.SlotsFilled >= e.MaxParticipants
}

// AcceptingRegistrations reports whether now falls in [open, close) and the
// event is in REGISTRATION_OPEN. Capacity is not considered.
func (e *Event) AcceptingRegistrations(now time.Time) bool {
	inWindow := !now.Before(e.RegistrationOpenDate) && now.Before(e.RegistrationCloseDate)
	return inWindow && e.Status == StatusRegistrationOpen
}

// IsRegistrationOpen is AcceptingRegistrations plus a free slot.
func (e *Event) IsRegistrationOpen(now time.Time) bool {
	return e.AcceptingRegistrations(now) && !e.IsFull()
}

// ManageableBy reports whether p owns the event or is an admin.
func (e *Event) ManageableBy(p Principal) bool {
	return p.IsAdmin() || (p.UserID != "" && p.UserID == e.OrganizerID)
}

// PublishStatus computes the status a publish at now assigns.
func (e *Event) PublishStatus(now time.Time) EventStatus {
	switch {
	case now.Before(e.RegistrationOpenDate):
		return StatusUpcoming
	case now.Before(e.RegistrationCloseDate):
		return StatusRegistrationOpen
	default:
		return StatusRegistrationClosed
	}
}

// ValidateConsistency checks the invariants that hold for every stored event.
func (e *Event) ValidateConsistency() error {
	if e.MinParticipants > e.MaxParticipants {
		return fmt.Errorf("%w: minimum participants cannot exceed maximum participants", ErrInvalidInput)
	}
	if e.MaxParticipants < e.SlotsFilled {
		return fmt.Errorf("%w: cannot reduce max participants below current registrations", ErrInvalidInput)
	}
	if e.IsPaid && e.EntryFee <= 0 {
		return fmt.Errorf("%w: entry fee is required for paid events", ErrInvalidInput)
	}
	if !e.RegistrationOpenDate.Before(e.RegistrationCloseDate) {
		return fmt.Errorf("%w: registration open date must be before close date", ErrInvalidInput)
	}
	if !e.RegistrationCloseDate.Before(DateOnly(e.EventDate)) {
		return fmt.Errorf("%w: registration must close before event date", ErrInvalidInput)
	}
	return nil
}

// ValidateNew checks the rules that apply at creation time on top of ValidateConsistency.
func (e *Event) ValidateNew(now time.Time) error {
	if !DateOnly(e.EventDate).After(DateOnly(now)) {
		return fmt.Errorf("%w: event date must be in the future", ErrInvalidInput)
	}
	return e.ValidateConsistency()
}

// DateOnly truncates t to midnight UTC of its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatEventCode renders the human-readable event identifier, e.g. EVT-20261101-0042.
func FormatEventCode(day time.Time, seq int64) string {
	return fmt.Sprintf("EVT-%s-%04d", day.UTC().Format("20060102"), seq)
}

// EventView is the read-facing projection of an event.
// swagger:model EventView
type EventView struct {
	*Event
	SlotsAvailable     int  `json:"slots_available"`
	IsRegistrationOpen bool `json:"is_registration_open"`
}

// View builds the projection of e as seen at now.
func (e *Event) View(now time.Time) *EventView {
	available := e.MaxParticipants - e.SlotsFilled
	if available < 0 {
		available = 0
	}
	return &EventView{
		Event:              e,
		SlotsAvailable:     available,
		IsRegistrationOpen: e.IsRegistrationOpen(now),
	}
}

// EventPatch lists the fields an update may replace. Unset fields are left unchanged.
type EventPatch struct {
	Name                  Optional[string]
	GameName              Optional[string]
	Description           Optional[string]
	EventDate             Optional[time.Time]
	StartTime             Optional[string]
	EndTime               Optional[string]
	RegistrationOpenDate  Optional[time.Time]
	RegistrationCloseDate Optional[time.Time]
	ParticipationType     Optional[ParticipationType]
	TeamSize              Optional[int]
	MaxParticipants       Optional[int]
	MinParticipants       Optional[int]
	AllowedRanks          Optional[string]
	Platform              Optional[string]
	IsPaid                Optional[bool]
	EntryFee              Optional[float64]
	PrizePool             Optional[float64]
	PrizeDistribution     Optional[string]
	RefundPolicy          Optional[string]
	Map                   Optional[string]
	Mode                  Optional[string]
	ServerRegion          Optional[string]
	RoomID                Optional[string]
	RoomPassword          Optional[string]
	Rules                 Optional[string]
	Contact               Optional[string]
	ThumbnailURL          Optional[string]
	LiveStreamLink        Optional[string]
	Remarks               Optional[string]
	Visibility            Optional[Visibility]
}

// ApplyTo copies every set field onto e.
func (p EventPatch) ApplyTo(e *Event) {
	setIf(&e.Name, p.Name)
	setIf(&e.GameName, p.GameName)
	setIf(&e.Description, p.Description)
	if p.EventDate.IsSet {
		e.EventDate = DateOnly(p.EventDate.Val)
	}
	setIf(&e.StartTime, p.StartTime)
	setIf(&e.EndTime, p.EndTime)
	setIf(&e.RegistrationOpenDate, p.RegistrationOpenDate)
	setIf(&e.RegistrationCloseDate, p.RegistrationCloseDate)
	setIf(&e.ParticipationType, p.ParticipationType)
	setIf(&e.TeamSize, p.TeamSize)
	setIf(&e.MaxParticipants, p.MaxParticipants)
	setIf(&e.MinParticipants, p.MinParticipants)
	setIf(&e.AllowedRanks, p.AllowedRanks)
	setIf(&e.Platform, p.Platform)
	setIf(&e.IsPaid, p.IsPaid)
	setIf(&e.EntryFee, p.EntryFee)
	setIf(&e.PrizePool, p.PrizePool)
	setIf(&e.PrizeDistribution, p.PrizeDistribution)
	setIf(&e.RefundPolicy, p.RefundPolicy)
	setIf(&e.Map, p.Map)
	setIf(&e.Mode, p.Mode)
	setIf(&e.ServerRegion, p.ServerRegion)
	setIf(&e.RoomID, p.RoomID)
	setIf(&e.RoomPassword, p.RoomPassword)
	setIf(&e.Rules, p.Rules)
	setIf(&e.Contact, p.Contact)
	setIf(&e.ThumbnailURL, p.ThumbnailURL)
	setIf(&e.LiveStreamLink, p.LiveStreamLink)
	setIf(&e.Remarks, p.Remarks)
	setIf(&e.Visibility, p.Visibility)
}

func setIf[T any](dst *T, o Optional[T]) {
	if o.IsSet {
		*dst = o.Val
	}
}

// EventFilter narrows event listings. Zero-valued fields do not filter.
type EventFilter struct {
	OrganizerID string
	Status      EventStatus
	Visibility  Visibility
	// Keyword matches name, game name or description, case-insensitively.
	Keyword string
	// GameName matches the game name, case-insensitively.
	GameName string
	// DateFrom keeps events whose date is on or after it.
	DateFrom *time.Time
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	// NextCodeSequence returns the next value of the event code sequence.
	NextCodeSequence(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	// GetByIDForUpdate loads the event and locks its row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*Event, error)
	GetByEventCode(ctx context.Context, eventCode string) (*Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	UpdateStatus(ctx context.Context, id string, status EventStatus, remarks Optional[string]) (*Event, error)
	// AdjustSlotsFilled adds delta to the slot counter, never going below zero.
	AdjustSlotsFilled(ctx context.Context, id string, delta int) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter EventFilter, params PaginationParams) ([]*Event, int, error)
	// AdvanceStatuses moves published events through their time-driven statuses and
	// returns how many rows changed.
	AdvanceStatuses(ctx context.Context, now time.Time) (int64, error)
}

// EventService owns the event lifecycle.
type EventService interface {
	CreateEvent(ctx context.Context, p Principal, event *Event) (*EventView, error)
	UpdateEvent(ctx context.Context, p Principal, eventID string, patch EventPatch) (*EventView, error)
	DeleteEvent(ctx context.Context, p Principal, eventID string) error
	PublishEvent(ctx context.Context, p Principal, eventID string) (*EventView, error)
	CancelEvent(ctx context.Context, p Principal, eventID, reason string) (*EventView, error)
	GetEvent(ctx context.Context, eventID string) (*EventView, error)
	GetEventByCode(ctx context.Context, eventCode string) (*EventView, error)
}

// EventQueryService serves the paged read paths over events.
type EventQueryService interface {
	ListPublicEvents(ctx context.Context, params PaginationParams) ([]*EventView, int, error)
	ListUpcomingEvents(ctx context.Context, params PaginationParams) ([]*EventView, int, error)
	SearchEvents(ctx context.Context, keyword string, params PaginationParams) ([]*EventView, int, error)
	ListEventsByGame(ctx context.Context, gameName string, params PaginationParams) ([]*EventView, int, error)
	ListMyEvents(ctx context.Context, p Principal, params PaginationParams) ([]*EventView, int, error)
	// ListAllEvents is the admin view over every event regardless of status or visibility.
	ListAllEvents(ctx context.Context, p Principal, params PaginationParams) ([]*EventView, int, error)
}
