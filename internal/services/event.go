package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"playerone/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	regRepo        domain.EventRegistrationRepository
	tx             domain.Transactor
	emailService   domain.EmailService
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	regRepo domain.EventRegistrationRepository,
	tx domain.Transactor,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
	opts ...Option,
) domain.EventService {
	o := applyOptions(opts)
	return &eventService{
		eventRepo:      eventRepo,
		regRepo:        regRepo,
		tx:             tx,
		emailService:   emailService,
		logger:         logger,
		now:            o.now,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, p domain.Principal, event *domain.Event) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !p.CanOrganize() {
		return nil, forbidden("only organizers and admins can create events")
	}

	now := s.now()
	event.EventDate = domain.DateOnly(event.EventDate)
	if err := event.ValidateNew(now); err != nil {
		return nil, err
	}

	event.OrganizerID = p.UserID
	event.OrganizerName = p.Username
	event.SlotsFilled = 0
	event.Status = domain.StatusDraft
	if event.Visibility == "" {
		event.Visibility = domain.VisibilityPublic
	}
	event.CreatedAt = now
	event.UpdatedAt = now

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		seq, err := s.eventRepo.NextCodeSequence(ctx)
		if err != nil {
			return err
		}
		event.EventCode = domain.FormatEventCode(now, seq)
		return s.eventRepo.Create(ctx, event)
	})
	if err != nil {
		return nil, wrapErr("create event", err)
	}

	s.logger.Info("event created", "event_code", event.EventCode, "event_id", event.ID, "user_id", p.UserID)
	return event.View(now), nil
}

// loadManaged locks the event and checks that p may manage it.
func (s *eventService) loadManaged(ctx context.Context, p domain.Principal, eventID, action string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
	if err != nil {
		return nil, notFound("event", eventID, err)
	}
	if !event.ManageableBy(p) {
		return nil, forbidden("you are not authorized to " + action + " this event")
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, p domain.Principal, eventID string, patch domain.EventPatch) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var updated *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.loadManaged(ctx, p, eventID, "update")
		if err != nil {
			return err
		}
		if patch.MaxParticipants.IsSet && patch.MaxParticipants.Val < current.SlotsFilled {
			return invalid("cannot reduce max participants below current registrations")
		}
		candidate := *current
		patch.ApplyTo(&candidate)
		if err := candidate.ValidateConsistency(); err != nil {
			return err
		}
		updated, err = s.eventRepo.Update(ctx, eventID, patch)
		return err
	})
	if err != nil {
		return nil, wrapErr("update event", err)
	}

	s.logger.Info("event updated", "event_code", updated.EventCode, "user_id", p.UserID)
	return updated.View(s.now()), nil
}

func (s *eventService) DeleteEvent(ctx context.Context, p domain.Principal, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var code string
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		event, err := s.loadManaged(ctx, p, eventID, "delete")
		if err != nil {
			return err
		}
		if event.SlotsFilled > 0 {
			return invalid("cannot delete event with existing registrations, cancel the event instead")
		}
		code = event.EventCode
		return s.eventRepo.Delete(ctx, eventID)
	})
	if err != nil {
		return wrapErr("delete event", err)
	}

	s.logger.Info("event deleted", "event_code", code, "user_id", p.UserID)
	return nil
}

func (s *eventService) PublishEvent(ctx context.Context, p domain.Principal, eventID string) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	var published *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		event, err := s.loadManaged(ctx, p, eventID, "publish")
		if err != nil {
			return err
		}
		if !event.Status.Publishable() {
			return invalid("cannot publish an event with status %s", event.Status)
		}
		published, err = s.eventRepo.UpdateStatus(ctx, eventID, event.PublishStatus(now), domain.None[string]())
		return err
	})
	if err != nil {
		return nil, wrapErr("publish event", err)
	}

	s.logger.Info("event published", "event_code", published.EventCode, "status", published.Status, "user_id", p.UserID)
	return published.View(now), nil
}

func (s *eventService) CancelEvent(ctx context.Context, p domain.Principal, eventID, reason string) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reason = strings.TrimSpace(reason)
	var cancelled *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		event, err := s.loadManaged(ctx, p, eventID, "cancel")
		if err != nil {
			return err
		}
		if event.Status.Terminal() {
			return invalid("cannot cancel an event with status %s", event.Status)
		}
		cancelled, err = s.eventRepo.UpdateStatus(ctx, eventID, domain.StatusCancelled, domain.Some(reason))
		return err
	})
	if err != nil {
		return nil, wrapErr("cancel event", err)
	}

	s.logger.Info("event cancelled", "event_code", cancelled.EventCode, "reason", reason, "user_id", p.UserID)
	s.notifyCancelled(context.WithoutCancel(ctx), cancelled, reason)
	return cancelled.View(s.now()), nil
}

// notifyCancelled emails every registrant still holding a slot. Failures are logged only.
func (s *eventService) notifyCancelled(ctx context.Context, event *domain.Event, reason string) {
	regs, err := s.regRepo.ListByEventIDAndStatus(ctx, event.ID, domain.RegistrationPending, domain.RegistrationConfirmed)
	if err != nil {
		s.logger.Error("list registrants for cancellation email", "event_code", event.EventCode, "error", err)
		return
	}
	for _, reg := range regs {
		err := s.emailService.SendEventCancelled(ctx, &domain.EventCancelledEmailData{
			Email:     reg.UserEmail,
			Username:  reg.Username,
			EventName: event.Name,
			EventCode: event.EventCode,
			Reason:    reason,
		})
		if err != nil {
			s.logger.Error("send event cancelled email", "event_code", event.EventCode, "registration_id", reg.ID, "error", err)
		}
	}
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, wrapErr("get event", notFound("event", eventID, err))
	}
	return event.View(s.now()), nil
}

func (s *eventService) GetEventByCode(ctx context.Context, eventCode string) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByEventCode(ctx, eventCode)
	if err != nil {
		return nil, wrapErr("get event by code", notFound("event", eventCode, err))
	}
	return event.View(s.now()), nil
}
