package controllers

import (
	"log/slog"
	"net/http"

	"playerone/internal/delivery/http/helpers"
	"playerone/internal/domain"
)

// RegisterRequest is the request body for POST /api/events/{eventID}/register.
// transaction_id is required for paid events.
type RegisterRequest struct {
	TeamName        string `json:"team_name" validate:"max=100"`
	AdditionalNotes string `json:"additional_notes" validate:"max=1000"`
	TransactionID   string `json:"transaction_id" validate:"max=100"`
}

// RejectRegistrationRequest is the request body for PUT /api/registrations/{registrationID}/reject.
type RejectRegistrationRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// RegistrationSuccessResponse is the success response envelope for endpoints returning one registration.
type RegistrationSuccessResponse struct {
	Data  *domain.EventRegistration `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// RegistrationPage is the paged registration listing payload.
type RegistrationPage = helpers.PagedResponse[*domain.EventRegistration]

// RegistrationPageSuccessResponse is the success response envelope for paged registration listings.
type RegistrationPageSuccessResponse struct {
	Data  RegistrationPage  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RegistrationListSuccessResponse is the success response envelope for unpaged registration lists.
type RegistrationListSuccessResponse struct {
	Data  []*domain.EventRegistration `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// RegistrationStatusResponse is the data payload of the is-registered check.
type RegistrationStatusResponse struct {
	EventID    string `json:"event_id"`
	Registered bool   `json:"registered"`
}

// RegistrationStatusSuccessResponse is the success response envelope for the is-registered check.
type RegistrationStatusSuccessResponse struct {
	Data  RegistrationStatusResponse `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register for an event
// @Description Free events are confirmed immediately. Paid events need a transaction_id and stay PENDING until the organizer confirms payment.
// @Tags player
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body RegisterRequest false "Registration details"
// @Success 201 {object} controllers.RegistrationSuccessResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden or registration_closed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: event_full or duplicate_registration"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID}/register [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req RegisterRequest
	if r.ContentLength != 0 && !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.Register(r.Context(), p, eventID, domain.RegistrationRequest{
		TeamName:        req.TeamName,
		AdditionalNotes: req.AdditionalNotes,
		TransactionID:   req.TransactionID,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// IsRegistered godoc
// @Summary Check registration for an event
// @Description Reports whether the caller holds a PENDING or CONFIRMED registration for the event.
// @Tags player
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.RegistrationStatusSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID}/is-registered [get]
func (c *RegistrationController) IsRegistered(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	registered, err := c.Service.IsRegistered(r.Context(), p, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationStatusResponse{EventID: eventID, Registered: registered})
}

// CancelRegistration godoc
// @Summary Cancel my registration
// @Description Cancels the caller's own registration and frees its slot.
// @Tags player
// @Produce json
// @Security BearerAuth
// @Param registrationID path string true "Registration ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data.message confirms the cancellation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (already cancelled or rejected)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/registrations/{registrationID} [delete]
func (c *RegistrationController) CancelRegistration(w http.ResponseWriter, r *http.Request) {
	regID, ok := pathUUID(w, r, "registrationID")
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	if _, err := c.Service.CancelRegistration(r.Context(), p, regID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.MessageResponse{Message: "registration cancelled"})
}

// ListMyRegistrations godoc
// @Summary List my registrations
// @Tags player
// @Produce json
// @Security BearerAuth
// @Param page query int false "Zero-based page (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param sort_by query string false "Sort field (default registered_at)"
// @Param sort_dir query string false "asc or desc (default desc)"
// @Success 200 {object} controllers.RegistrationPageSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/registrations/me [get]
func (c *RegistrationController) ListMyRegistrations(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	params := helpers.ParsePagination(r)
	regs, total, err := c.Service.ListMyRegistrations(r.Context(), p, params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewPagedResponse(regs, params, total))
}

// GetRegistration godoc
// @Summary Get a registration
// @Description Visible to the registrant, the event's organizer and admins.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param registrationID path string true "Registration ID (UUID)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/registrations/{registrationID} [get]
func (c *RegistrationController) GetRegistration(w http.ResponseWriter, r *http.Request) {
	regID, ok := pathUUID(w, r, "registrationID")
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	reg, err := c.Service.GetRegistration(r.Context(), p, regID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

// ListEventRegistrations godoc
// @Summary List registrations for an event
// @Tags organizer
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param page query int false "Zero-based page (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param sort_by query string false "Sort field (default registered_at)"
// @Param sort_dir query string false "asc or desc (default desc)"
// @Success 200 {object} controllers.RegistrationPageSuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/organizer/events/{eventID}/registrations [get]
func (c *RegistrationController) ListEventRegistrations(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	params := helpers.ParsePagination(r)
	regs, total, err := c.Service.ListEventRegistrations(r.Context(), p, eventID, params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewPagedResponse(regs, params, total))
}

// ListConfirmedRegistrations godoc
// @Summary List confirmed registrations for an event
// @Tags organizer
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.RegistrationListSuccessResponse "data contains the confirmed registrations"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/organizer/events/{eventID}/registrations/confirmed [get]
func (c *RegistrationController) ListConfirmedRegistrations(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	regs, err := c.Service.ListConfirmedRegistrations(r.Context(), p, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if regs == nil {
		regs = []*domain.EventRegistration{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// ConfirmRegistration godoc
// @Summary Confirm a pending registration
// @Description Confirms a PENDING registration and marks payment verified for paid events. The player is notified by email.
// @Tags organizer
// @Produce json
// @Security BearerAuth
// @Param registrationID path string true "Registration ID (UUID)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains the confirmed registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (not pending)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/registrations/{registrationID}/confirm [put]
func (c *RegistrationController) ConfirmRegistration(w http.ResponseWriter, r *http.Request) {
	regID, ok := pathUUID(w, r, "registrationID")
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	reg, err := c.Service.ConfirmRegistration(r.Context(), p, regID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

// RejectRegistration godoc
// @Summary Reject a registration
// @Description Rejects a PENDING or CONFIRMED registration, frees its slot and notifies the player.
// @Tags organizer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registrationID path string true "Registration ID (UUID)"
// @Param body body RejectRegistrationRequest false "Rejection reason"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains the rejected registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/registrations/{registrationID}/reject [put]
func (c *RegistrationController) RejectRegistration(w http.ResponseWriter, r *http.Request) {
	regID, ok := pathUUID(w, r, "registrationID")
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req RejectRegistrationRequest
	if r.ContentLength != 0 && !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.RejectRegistration(r.Context(), p, regID, req.Reason)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}
