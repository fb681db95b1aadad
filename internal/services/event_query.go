package services

import (
	"context"
	"strings"
	"time"

	"playerone/internal/domain"
)

type eventQueryService struct {
	eventRepo      domain.EventRepository
	now            func() time.Time
	contextTimeout time.Duration
}

// NewEventQueryService returns the read-only listing service over events.
func NewEventQueryService(eventRepo domain.EventRepository, timeout time.Duration, opts ...Option) domain.EventQueryService {
	o := applyOptions(opts)
	return &eventQueryService{
		eventRepo:      eventRepo,
		now:            o.now,
		contextTimeout: timeout,
	}
}

func (s *eventQueryService) list(ctx context.Context, op string, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	params = params.Normalize(domain.EventSortKeys, "event_date", domain.SortAsc)
	events, total, err := s.eventRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, wrapErr(op, err)
	}
	return views(events, s.now()), total, nil
}

func (s *eventQueryService) ListPublicEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	return s.list(ctx, "list public events", domain.EventFilter{
		Status:     domain.StatusRegistrationOpen,
		Visibility: domain.VisibilityPublic,
	}, params)
}

func (s *eventQueryService) ListUpcomingEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	today := domain.DateOnly(s.now())
	// always soonest first
	params.SortBy = "event_date"
	params.SortDir = domain.SortAsc
	return s.list(ctx, "list upcoming events", domain.EventFilter{
		Status:   domain.StatusRegistrationOpen,
		DateFrom: &today,
	}, params)
}

func (s *eventQueryService) SearchEvents(ctx context.Context, keyword string, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, 0, invalid("keyword is required")
	}
	return s.list(ctx, "search events", domain.EventFilter{
		Status:     domain.StatusRegistrationOpen,
		Visibility: domain.VisibilityPublic,
		Keyword:    keyword,
	}, params)
}

func (s *eventQueryService) ListEventsByGame(ctx context.Context, gameName string, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	gameName = strings.TrimSpace(gameName)
	if gameName == "" {
		return nil, 0, invalid("game name is required")
	}
	return s.list(ctx, "list events by game", domain.EventFilter{
		Status:   domain.StatusRegistrationOpen,
		GameName: gameName,
	}, params)
}

func (s *eventQueryService) ListMyEvents(ctx context.Context, p domain.Principal, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	if !p.CanOrganize() {
		return nil, 0, forbidden("only organizers and admins have events")
	}
	return s.list(ctx, "list my events", domain.EventFilter{OrganizerID: p.UserID}, params)
}

func (s *eventQueryService) ListAllEvents(ctx context.Context, p domain.Principal, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	if !p.IsAdmin() {
		return nil, 0, forbidden("only admins can list every event")
	}
	return s.list(ctx, "list all events", domain.EventFilter{}, params)
}
