package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"playerone/internal/delivery/http/helpers"
	"playerone/internal/domain"
)

const dateLayout = "2006-01-02"

// CreateEventRequest is the request body for POST /api/organizer/events.
// event_date is a calendar date (YYYY-MM-DD); start and end times are HH:MM.
type CreateEventRequest struct {
	Name                  string    `json:"event_name" validate:"required,min=3,max=200"`
	GameName              string    `json:"game_name" validate:"required,max=100"`
	Description           string    `json:"description" validate:"max=5000"`
	EventDate             string    `json:"event_date" validate:"required,datetime=2006-01-02"`
	StartTime             string    `json:"event_start_time" validate:"required,clock"`
	EndTime               string    `json:"event_end_time" validate:"required,clock"`
	RegistrationOpenDate  time.Time `json:"registration_open_date" validate:"required"`
	RegistrationCloseDate time.Time `json:"registration_close_date" validate:"required"`
	ParticipationType     string    `json:"participation_type" validate:"required,oneof=SOLO DUO SQUAD"`
	TeamSize              int       `json:"team_size" validate:"required,gte=1,lte=100"`
	MaxParticipants       int       `json:"max_participants" validate:"required,gte=2,lte=1000"`
	MinParticipants       int       `json:"min_participants" validate:"required,gte=2"`
	AllowedRanks          string    `json:"allowed_ranks" validate:"max=200"`
	Platform              string    `json:"platform" validate:"max=100"`
	IsPaid                bool      `json:"is_paid"`
	EntryFee              float64   `json:"entry_fee" validate:"gte=0"`
	PrizePool             float64   `json:"prize_pool" validate:"gte=0"`
	PrizeDistribution     string    `json:"prize_distribution" validate:"max=5000"`
	RefundPolicy          string    `json:"refund_policy" validate:"max=2000"`
	Map                   string    `json:"map" validate:"max=100"`
	Mode                  string    `json:"mode" validate:"max=100"`
	ServerRegion          string    `json:"server_region" validate:"max=100"`
	RoomID                string    `json:"room_id" validate:"max=100"`
	RoomPassword          string    `json:"room_password" validate:"max=100"`
	Rules                 string    `json:"rules" validate:"max=10000"`
	Contact               string    `json:"contact" validate:"max=200"`
	ThumbnailURL          string    `json:"thumbnail_url" validate:"omitempty,url,max=500"`
	LiveStreamLink        string    `json:"live_stream_link" validate:"omitempty,url,max=500"`
	Remarks               string    `json:"remarks" validate:"max=1000"`
	Visibility            string    `json:"visibility" validate:"omitempty,oneof=PUBLIC PRIVATE"`
}

func (c CreateEventRequest) toEvent() (*domain.Event, error) {
	date, err := time.Parse(dateLayout, c.EventDate)
	if err != nil {
		return nil, err
	}
	return &domain.Event{
		Name:                  strings.TrimSpace(c.Name),
		GameName:              strings.TrimSpace(c.GameName),
		Description:           c.Description,
		EventDate:             date,
		StartTime:             c.StartTime,
		EndTime:               c.EndTime,
		RegistrationOpenDate:  c.RegistrationOpenDate,
		RegistrationCloseDate: c.RegistrationCloseDate,
		ParticipationType:     domain.ParticipationType(c.ParticipationType),
		TeamSize:              c.TeamSize,
		MaxParticipants:       c.MaxParticipants,
		MinParticipants:       c.MinParticipants,
		AllowedRanks:          c.AllowedRanks,
		Platform:              c.Platform,
		IsPaid:                c.IsPaid,
		EntryFee:              c.EntryFee,
		PrizePool:             c.PrizePool,
		PrizeDistribution:     c.PrizeDistribution,
		RefundPolicy:          c.RefundPolicy,
		Map:                   c.Map,
		Mode:                  c.Mode,
		ServerRegion:          c.ServerRegion,
		RoomID:                c.RoomID,
		RoomPassword:          c.RoomPassword,
		Rules:                 c.Rules,
		Contact:               c.Contact,
		ThumbnailURL:          c.ThumbnailURL,
		LiveStreamLink:        c.LiveStreamLink,
		Remarks:               c.Remarks,
		Visibility:            domain.Visibility(c.Visibility),
	}, nil
}

// UpdateEventRequest is the request body for PUT /api/organizer/events/{eventID}.
// All fields optional; omitted or null fields are unchanged.
type UpdateEventRequest struct {
	Name                  domain.Optional[string]                   `json:"event_name" swaggertype:"string" validate:"omitempty,min=3,max=200"`
	GameName              domain.Optional[string]                   `json:"game_name" swaggertype:"string" validate:"omitempty,min=1,max=100"`
	Description           domain.Optional[string]                   `json:"description" swaggertype:"string" validate:"omitempty,max=5000"`
	EventDate             domain.Optional[string]                   `json:"event_date" swaggertype:"string" validate:"omitempty,datetime=2006-01-02"`
	StartTime             domain.Optional[string]                   `json:"event_start_time" swaggertype:"string" validate:"omitempty,clock"`
	EndTime               domain.Optional[string]                   `json:"event_end_time" swaggertype:"string" validate:"omitempty,clock"`
	RegistrationOpenDate  domain.Optional[time.Time]                `json:"registration_open_date" swaggertype:"string" format:"date-time"`
	RegistrationCloseDate domain.Optional[time.Time]                `json:"registration_close_date" swaggertype:"string" format:"date-time"`
	ParticipationType     domain.Optional[domain.ParticipationType] `json:"participation_type" swaggertype:"string" validate:"omitempty,oneof=SOLO DUO SQUAD"`
	TeamSize              domain.Optional[int]                      `json:"team_size" swaggertype:"integer" validate:"omitempty,gte=1,lte=100"`
	MaxParticipants       domain.Optional[int]                      `json:"max_participants" swaggertype:"integer" validate:"omitempty,gte=2,lte=1000"`
	MinParticipants       domain.Optional[int]                      `json:"min_participants" swaggertype:"integer" validate:"omitempty,gte=2"`
	AllowedRanks          domain.Optional[string]                   `json:"allowed_ranks" swaggertype:"string" validate:"omitempty,max=200"`
	Platform              domain.Optional[string]                   `json:"platform" swaggertype:"string" validate:"omitempty,max=100"`
	IsPaid                domain.Optional[bool]                     `json:"is_paid" swaggertype:"boolean"`
	EntryFee              domain.Optional[float64]                  `json:"entry_fee" swaggertype:"number" validate:"omitempty,gte=0"`
	PrizePool             domain.Optional[float64]                  `json:"prize_pool" swaggertype:"number" validate:"omitempty,gte=0"`
	PrizeDistribution     domain.Optional[string]                   `json:"prize_distribution" swaggertype:"string" validate:"omitempty,max=5000"`
	RefundPolicy          domain.Optional[string]                   `json:"refund_policy" swaggertype:"string" validate:"omitempty,max=2000"`
	Map                   domain.Optional[string]                   `json:"map" swaggertype:"string" validate:"omitempty,max=100"`
	Mode                  domain.Optional[string]                   `json:"mode" swaggertype:"string" validate:"omitempty,max=100"`
	ServerRegion          domain.Optional[string]                   `json:"server_region" swaggertype:"string" validate:"omitempty,max=100"`
	RoomID                domain.Optional[string]                   `json:"room_id" swaggertype:"string" validate:"omitempty,max=100"`
	RoomPassword          domain.Optional[string]                   `json:"room_password" swaggertype:"string" validate:"omitempty,max=100"`
	Rules                 domain.Optional[string]                   `json:"rules" swaggertype:"string" validate:"omitempty,max=10000"`
	Contact               domain.Optional[string]                   `json:"contact" swaggertype:"string" validate:"omitempty,max=200"`
	ThumbnailURL          domain.Optional[string]                   `json:"thumbnail_url" swaggertype:"string" validate:"omitempty,url,max=500"`
	LiveStreamLink        domain.Optional[string]                   `json:"live_stream_link" swaggertype:"string" validate:"omitempty,url,max=500"`
	Remarks               domain.Optional[string]                   `json:"remarks" swaggertype:"string" validate:"omitempty,max=1000"`
	Visibility            domain.Optional[domain.Visibility]        `json:"visibility" swaggertype:"string" validate:"omitempty,oneof=PUBLIC PRIVATE"`
}

func (u UpdateEventRequest) toPatch() (domain.EventPatch, error) {
	patch := domain.EventPatch{
		Name:                  u.Name,
		GameName:              u.GameName,
		Description:           u.Description,
		StartTime:             u.StartTime,
		EndTime:               u.EndTime,
		RegistrationOpenDate:  u.RegistrationOpenDate,
		RegistrationCloseDate: u.RegistrationCloseDate,
		ParticipationType:     u.ParticipationType,
		TeamSize:              u.TeamSize,
		MaxParticipants:       u.MaxParticipants,
		MinParticipants:       u.MinParticipants,
		AllowedRanks:          u.AllowedRanks,
		Platform:              u.Platform,
		IsPaid:                u.IsPaid,
		EntryFee:              u.EntryFee,
		PrizePool:             u.PrizePool,
		PrizeDistribution:     u.PrizeDistribution,
		RefundPolicy:          u.RefundPolicy,
		Map:                   u.Map,
		Mode:                  u.Mode,
		ServerRegion:          u.ServerRegion,
		RoomID:                u.RoomID,
		RoomPassword:          u.RoomPassword,
		Rules:                 u.Rules,
		Contact:               u.Contact,
		ThumbnailURL:          u.ThumbnailURL,
		LiveStreamLink:        u.LiveStreamLink,
		Remarks:               u.Remarks,
		Visibility:            u.Visibility,
	}
	if u.EventDate.IsSet {
		date, err := time.Parse(dateLayout, u.EventDate.Val)
		if err != nil {
			return domain.EventPatch{}, err
		}
		patch.EventDate = domain.Some(date)
	}
	return patch, nil
}

// CancelEventRequest is the request body for POST /api/organizer/events/{eventID}/cancel.
type CancelEventRequest struct {
	Reason string `json:"reason" validate:"max=1000"`
}

// EventSuccessResponse is the success response envelope for endpoints returning one event.
type EventSuccessResponse struct {
	Data  *domain.EventView `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventPage is the paged event listing payload.
type EventPage = helpers.PagedResponse[*domain.EventView]

// EventPageSuccessResponse is the success response envelope for paged event listings.
type EventPageSuccessResponse struct {
	Data  EventPage         `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventController serves the organizer, public and admin event endpoints.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Query   domain.EventQueryService
}

func NewEventController(logger *slog.Logger, svc domain.EventService, query domain.EventQueryService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Query:   query,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates a DRAFT event owned by the caller. event_code, status and slots_filled are server-generated.
// @Tags organizer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/organizer/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := req.toEvent()
	if err != nil {
		helpers.WriteValidationError(w, map[string]string{"event_date": "must be a date in YYYY-MM-DD format"})
		return
	}
	view, err := c.Service.CreateEvent(r.Context(), p, event)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, view)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partially updates an event. Only the organizer who owns it or an admin may update. Omitted fields are unchanged; status and slots cannot be set.
// @Tags organizer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/organizer/events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		helpers.WriteValidationError(w, map[string]string{"event_date": "must be a date in YYYY-MM-DD format"})
		return
	}
	view, err := c.Service.UpdateEvent(r.Context(), p, eventID, patch)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes an event that has no filled slots. Events with registrations must be cancelled instead.
// @Tags organizer
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data.message confirms the deletion"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (event has registrations)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/organizer/events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), p, eventID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.MessageResponse{Message: "event deleted"})
}

// PublishEvent godoc
// @Summary Publish an event
// @Description Sets the status from the registration window: UPCOMING before it opens, REGISTRATION_OPEN inside it, REGISTRATION_CLOSED after it.
// @Tags organizer
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the published event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (status cannot be published)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/organizer/events/{eventID}/publish [post]
func (c *EventController) PublishEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	view, err := c.Service.PublishEvent(r.Context(), p, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// CancelEvent godoc
// @Summary Cancel an event
// @Description Cancels a non-terminal event and stores the reason in remarks. Registrants holding a slot are notified by email.
// @Tags organizer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body CancelEventRequest false "Cancellation reason"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the cancelled event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/organizer/events/{eventID}/cancel [post]
func (c *EventController) CancelEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req CancelEventRequest
	if r.ContentLength != 0 && !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	view, err := c.Service.CancelEvent(r.Context(), p, eventID, req.Reason)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID} [get]
// @Router /api/organizer/events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	view, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// GetEventByCode godoc
// @Summary Get an event by its code
// @Tags events
// @Produce json
// @Param eventCode path string true "Event code, e.g. EVT-20260601-0001"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/code/{eventCode} [get]
func (c *EventController) GetEventByCode(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.PathValue("eventCode"))
	if code == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventCode")
		return
	}
	view, err := c.Service.GetEventByCode(r.Context(), code)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// writeEventPage renders a paged event listing or the service error.
func (c *EventController) writeEventPage(w http.ResponseWriter, r *http.Request, params domain.PaginationParams, views []*domain.EventView, total int, err error) {
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewPagedResponse(views, params, total))
}

// ListMyEvents godoc
// @Summary List the caller's events
// @Description Every event organized by the caller, in any status.
// @Tags organizer
// @Produce json
// @Security BearerAuth
// @Param page query int false "Zero-based page (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param sort_by query string false "Sort field (default event_date)"
// @Param sort_dir query string false "asc or desc (default asc)"
// @Success 200 {object} controllers.EventPageSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/organizer/events [get]
func (c *EventController) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	params := helpers.ParsePagination(r)
	views, total, err := c.Query.ListMyEvents(r.Context(), p, params)
	c.writeEventPage(w, r, params, views, total, err)
}

// ListAllEvents godoc
// @Summary List every event
// @Description Admin view over all events regardless of status and visibility.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Zero-based page (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param sort_by query string false "Sort field (default event_date)"
// @Param sort_dir query string false "asc or desc (default asc)"
// @Success 200 {object} controllers.EventPageSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/events [get]
func (c *EventController) ListAllEvents(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	params := helpers.ParsePagination(r)
	views, total, err := c.Query.ListAllEvents(r.Context(), p, params)
	c.writeEventPage(w, r, params, views, total, err)
}

// ListPublicEvents godoc
// @Summary Browse open public events
// @Tags events
// @Produce json
// @Param page query int false "Zero-based page (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param sort_by query string false "Sort field (default event_date)"
// @Param sort_dir query string false "asc or desc (default asc)"
// @Success 200 {object} controllers.EventPageSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/public [get]
func (c *EventController) ListPublicEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	views, total, err := c.Query.ListPublicEvents(r.Context(), params)
	c.writeEventPage(w, r, params, views, total, err)
}

// ListUpcomingEvents godoc
// @Summary Upcoming events open for registration
// @Description Events with an open registration window dated today or later, soonest first.
// @Tags events
// @Produce json
// @Param page query int false "Zero-based page (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Success 200 {object} controllers.EventPageSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/upcoming [get]
func (c *EventController) ListUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	views, total, err := c.Query.ListUpcomingEvents(r.Context(), params)
	c.writeEventPage(w, r, params, views, total, err)
}

// SearchEvents godoc
// @Summary Search open public events
// @Description Case-insensitive match on name, game name or description.
// @Tags events
// @Produce json
// @Param keyword query string true "Search keyword"
// @Param page query int false "Zero-based page (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param sort_by query string false "Sort field (default event_date)"
// @Param sort_dir query string false "asc or desc (default asc)"
// @Success 200 {object} controllers.EventPageSuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (missing keyword)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/search [get]
func (c *EventController) SearchEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	views, total, err := c.Query.SearchEvents(r.Context(), r.URL.Query().Get("keyword"), params)
	c.writeEventPage(w, r, params, views, total, err)
}

// ListEventsByGame godoc
// @Summary Open events for a game
// @Tags events
// @Produce json
// @Param gameName path string true "Game name (case-insensitive)"
// @Param page query int false "Zero-based page (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param sort_by query string false "Sort field (default event_date)"
// @Param sort_dir query string false "asc or desc (default asc)"
// @Success 200 {object} controllers.EventPageSuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/game/{gameName} [get]
func (c *EventController) ListEventsByGame(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	views, total, err := c.Query.ListEventsByGame(r.Context(), r.PathValue("gameName"), params)
	c.writeEventPage(w, r, params, views, total, err)
}
