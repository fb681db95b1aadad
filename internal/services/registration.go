package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"playerone/internal/domain"
)

type registrationService struct {
	eventRepo      domain.EventRepository
	regRepo        domain.EventRegistrationRepository
	tx             domain.Transactor
	emailService   domain.EmailService
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration
}

// NewRegistrationService returns the coordinator that keeps registrations and
// event slot counters consistent.
func NewRegistrationService(eventRepo domain.EventRepository,
	regRepo domain.EventRegistrationRepository,
	tx domain.Transactor,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
	opts ...Option,
) domain.RegistrationService {
	o := applyOptions(opts)
	return &registrationService{
		eventRepo:      eventRepo,
		regRepo:        regRepo,
		tx:             tx,
		emailService:   emailService,
		logger:         logger,
		now:            o.now,
		contextTimeout: timeout,
	}
}

func (s *registrationService) Register(ctx context.Context, p domain.Principal, eventID string, req domain.RegistrationRequest) (*domain.EventRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if p.Role != domain.RolePlayer {
		return nil, forbidden("only players can register for events")
	}

	now := s.now()
	var created *domain.EventRegistration
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		event, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return notFound("event", eventID, err)
		}
		if !event.AcceptingRegistrations(now) {
			return domain.ErrRegistrationClosed
		}
		if event.IsFull() {
			return domain.ErrEventFull
		}
		exists, err := s.regRepo.ExistsActive(ctx, eventID, p.UserID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateRegistration
		}
		txID := strings.TrimSpace(req.TransactionID)
		if event.IsPaid && txID == "" {
			return invalid("transaction id is required for paid events")
		}

		amount := event.EntryFee
		reg := &domain.EventRegistration{
			EventID:         eventID,
			UserID:          p.UserID,
			Status:          domain.RegistrationConfirmed,
			TeamName:        strings.TrimSpace(req.TeamName),
			AdditionalNotes: req.AdditionalNotes,
			AmountPaid:      &amount,
			RegisteredAt:    now,
			UpdatedAt:       now,
		}
		if event.IsPaid {
			reg.Status = domain.RegistrationPending
		}
		if txID != "" {
			reg.TransactionID = &txID
		}
		if err := s.regRepo.Create(ctx, reg); err != nil {
			return err
		}
		if err := s.eventRepo.AdjustSlotsFilled(ctx, eventID, 1); err != nil {
			return err
		}
		created, err = s.regRepo.GetByID(ctx, reg.ID)
		return err
	})
	if err != nil {
		return nil, wrapErr("register", err)
	}

	s.logger.Info("registration created",
		"registration_id", created.ID, "event_id", eventID, "user_id", p.UserID, "status", created.Status)
	return created, nil
}

// lockRegistration locks the event row before the registration row, the same
// order Register uses, and returns both.
func (s *registrationService) lockRegistration(ctx context.Context, registrationID string) (*domain.Event, *domain.EventRegistration, error) {
	reg, err := s.regRepo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, nil, notFound("registration", registrationID, err)
	}
	event, err := s.eventRepo.GetByIDForUpdate(ctx, reg.EventID)
	if err != nil {
		return nil, nil, notFound("event", reg.EventID, err)
	}
	reg, err = s.regRepo.GetByIDForUpdate(ctx, registrationID)
	if err != nil {
		return nil, nil, notFound("registration", registrationID, err)
	}
	return event, reg, nil
}

func (s *registrationService) CancelRegistration(ctx context.Context, p domain.Principal, registrationID string) (*domain.EventRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	var cancelled *domain.EventRegistration
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, reg, err := s.lockRegistration(ctx, registrationID)
		if err != nil {
			return err
		}
		if reg.UserID != p.UserID {
			return forbidden("you are not authorized to cancel this registration")
		}
		switch reg.Status {
		case domain.RegistrationCancelled:
			return invalid("registration is already cancelled")
		case domain.RegistrationRejected:
			return invalid("cannot cancel a rejected registration")
		}
		reason := domain.UserCancellationReason
		cancelled, err = s.regRepo.UpdateStatus(ctx, registrationID, domain.RegistrationStatusChange{
			Status:             domain.RegistrationCancelled,
			CancelledAt:        &now,
			CancellationReason: &reason,
			UpdatedAt:          now,
		})
		if err != nil {
			return err
		}
		return s.eventRepo.AdjustSlotsFilled(ctx, reg.EventID, -1)
	})
	if err != nil {
		return nil, wrapErr("cancel registration", err)
	}

	s.logger.Info("registration cancelled", "registration_id", registrationID, "user_id", p.UserID)
	return cancelled, nil
}

func (s *registrationService) ConfirmRegistration(ctx context.Context, p domain.Principal, registrationID string) (*domain.EventRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	var (
		event     *domain.Event
		confirmed *domain.EventRegistration
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var reg *domain.EventRegistration
		var err error
		event, reg, err = s.lockRegistration(ctx, registrationID)
		if err != nil {
			return err
		}
		if !event.ManageableBy(p) {
			return forbidden("you are not authorized to confirm registrations for this event")
		}
		switch reg.Status {
		case domain.RegistrationConfirmed:
			return invalid("registration is already confirmed")
		case domain.RegistrationRejected, domain.RegistrationCancelled:
			return invalid("cannot confirm a %s registration", strings.ToLower(string(reg.Status)))
		}
		change := domain.RegistrationStatusChange{
			Status:    domain.RegistrationConfirmed,
			UpdatedAt: now,
		}
		if event.IsPaid {
			change.PaymentVerified = domain.Some(true)
		}
		confirmed, err = s.regRepo.UpdateStatus(ctx, registrationID, change)
		return err
	})
	if err != nil {
		return nil, wrapErr("confirm registration", err)
	}

	s.logger.Info("registration confirmed", "registration_id", registrationID, "event_code", event.EventCode, "user_id", p.UserID)
	s.notify(context.WithoutCancel(ctx), "confirmed", event, confirmed, "")
	return confirmed, nil
}

// RejectRegistration releases the slot held by a PENDING or CONFIRMED registration.
// Rejecting a registration that no longer holds a slot fails, so the counter is
// decremented at most once per registration.
func (s *registrationService) RejectRegistration(ctx context.Context, p domain.Principal, registrationID, reason string) (*domain.EventRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	reason = strings.TrimSpace(reason)
	var (
		event    *domain.Event
		rejected *domain.EventRegistration
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var reg *domain.EventRegistration
		var err error
		event, reg, err = s.lockRegistration(ctx, registrationID)
		if err != nil {
			return err
		}
		if !event.ManageableBy(p) {
			return forbidden("you are not authorized to reject registrations for this event")
		}
		if !reg.Status.Active() {
			return invalid("cannot reject a %s registration", strings.ToLower(string(reg.Status)))
		}
		change := domain.RegistrationStatusChange{
			Status:    domain.RegistrationRejected,
			UpdatedAt: now,
		}
		if reason != "" {
			change.CancellationReason = &reason
		}
		rejected, err = s.regRepo.UpdateStatus(ctx, registrationID, change)
		if err != nil {
			return err
		}
		return s.eventRepo.AdjustSlotsFilled(ctx, event.ID, -1)
	})
	if err != nil {
		return nil, wrapErr("reject registration", err)
	}

	s.logger.Info("registration rejected", "registration_id", registrationID, "event_code", event.EventCode, "user_id", p.UserID)
	s.notify(context.WithoutCancel(ctx), "rejected", event, rejected, reason)
	return rejected, nil
}

func (s *registrationService) notify(ctx context.Context, kind string, event *domain.Event, reg *domain.EventRegistration, reason string) {
	data := &domain.RegistrationEmailData{
		Email:     reg.UserEmail,
		Username:  reg.Username,
		EventName: event.Name,
		EventCode: event.EventCode,
		EventDate: event.EventDate.Format("2006-01-02"),
		TeamName:  reg.TeamName,
		Reason:    reason,
	}
	var err error
	switch kind {
	case "confirmed":
		err = s.emailService.SendRegistrationConfirmed(ctx, data)
	case "rejected":
		err = s.emailService.SendRegistrationRejected(ctx, data)
	}
	if err != nil {
		s.logger.Error("send registration email", "kind", kind, "registration_id", reg.ID, "error", err)
	}
}

// loadManagedEvent loads an event and checks that p may see its registrations.
func (s *registrationService) loadManagedEvent(ctx context.Context, p domain.Principal, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, notFound("event", eventID, err)
	}
	if !event.ManageableBy(p) {
		return nil, forbidden("you are not authorized to view registrations for this event")
	}
	return event, nil
}

func (s *registrationService) ListEventRegistrations(ctx context.Context, p domain.Principal, eventID string, params domain.PaginationParams) ([]*domain.EventRegistration, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.loadManagedEvent(ctx, p, eventID); err != nil {
		return nil, 0, wrapErr("list event registrations", err)
	}
	params = params.Normalize(domain.RegistrationSortKeys, "registered_at", domain.SortDesc)
	regs, total, err := s.regRepo.ListByEventID(ctx, eventID, params)
	if err != nil {
		return nil, 0, wrapErr("list event registrations", err)
	}
	return regs, total, nil
}

func (s *registrationService) ListConfirmedRegistrations(ctx context.Context, p domain.Principal, eventID string) ([]*domain.EventRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.loadManagedEvent(ctx, p, eventID); err != nil {
		return nil, wrapErr("list confirmed registrations", err)
	}
	regs, err := s.regRepo.ListByEventIDAndStatus(ctx, eventID, domain.RegistrationConfirmed)
	if err != nil {
		return nil, wrapErr("list confirmed registrations", err)
	}
	return regs, nil
}

func (s *registrationService) ListMyRegistrations(ctx context.Context, p domain.Principal, params domain.PaginationParams) ([]*domain.EventRegistration, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	params = params.Normalize(domain.RegistrationSortKeys, "registered_at", domain.SortDesc)
	regs, total, err := s.regRepo.ListByUserID(ctx, p.UserID, params)
	if err != nil {
		return nil, 0, wrapErr("list my registrations", err)
	}
	return regs, total, nil
}

func (s *registrationService) GetRegistration(ctx context.Context, p domain.Principal, registrationID string) (*domain.EventRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reg, err := s.regRepo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, wrapErr("get registration", notFound("registration", registrationID, err))
	}
	if reg.UserID == p.UserID || p.IsAdmin() {
		return reg, nil
	}
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		return nil, wrapErr("get registration", notFound("event", reg.EventID, err))
	}
	if !event.ManageableBy(p) {
		return nil, forbidden("you are not authorized to view this registration")
	}
	return reg, nil
}

func (s *registrationService) IsRegistered(ctx context.Context, p domain.Principal, eventID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return false, wrapErr("is registered", notFound("event", eventID, err))
	}
	exists, err := s.regRepo.ExistsActive(ctx, eventID, p.UserID)
	if err != nil {
		return false, wrapErr("is registered", err)
	}
	return exists, nil
}
