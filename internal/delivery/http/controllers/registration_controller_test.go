package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playerone/internal/delivery/http/helpers"
	"playerone/internal/domain"
)

func TestRegistrationController_Register(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		body       string
		principal  *domain.Principal
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "free event",
			eventID:    eventUUID,
			body:       `{"team_name":"Night Owls"}`,
			principal:  &playerPrincipal,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "empty body",
			eventID:    eventUUID,
			principal:  &playerPrincipal,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid event id",
			eventID:    "ev-1",
			principal:  &playerPrincipal,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "no principal",
			eventID:    eventUUID,
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
		},
		{
			name:       "event full",
			eventID:    eventUUID,
			principal:  &playerPrincipal,
			fakeErr:    domain.ErrEventFull,
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeEventFull,
		},
		{
			name:       "registration closed",
			eventID:    eventUUID,
			principal:  &playerPrincipal,
			fakeErr:    domain.ErrRegistrationClosed,
			wantStatus: http.StatusForbidden,
			wantCode:   helpers.ErrCodeRegistrationClosed,
		},
		{
			name:       "duplicate",
			eventID:    eventUUID,
			principal:  &playerPrincipal,
			fakeErr:    domain.ErrDuplicateRegistration,
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeDuplicateRegistration,
		},
		{
			name:       "paid event without transaction",
			eventID:    eventUUID,
			principal:  &playerPrincipal,
			fakeErr:    fmt.Errorf("%w: transaction_id is required for paid events", domain.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "organizer forbidden",
			eventID:    eventUUID,
			principal:  &organizerPrincipal,
			fakeErr:    fmt.Errorf("%w: only players can register", domain.ErrForbidden),
			wantStatus: http.StatusForbidden,
			wantCode:   helpers.ErrCodeForbidden,
		},
		{
			name:       "team name too long",
			eventID:    eventUUID,
			body:       fmt.Sprintf(`{"team_name":"%0101d"}`, 0),
			principal:  &playerPrincipal,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRegistrationService{
				reg: &domain.EventRegistration{ID: regUUID, EventID: eventUUID, Status: domain.RegistrationConfirmed},
				err: tt.fakeErr,
			}
			ctrl := NewRegistrationController(testLogger, fake)

			rr, envelope := call(t, ctrl.Register, http.MethodPost, "/", tt.body, tt.principal, map[string]string{"eventID": tt.eventID})

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				var reg domain.EventRegistration
				decodeData(t, envelope, &reg)
				assert.Equal(t, regUUID, reg.ID)
				assert.Equal(t, domain.RegistrationConfirmed, reg.Status)
				assert.Equal(t, eventUUID, fake.lastID)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}

	t.Run("request fields are forwarded", func(t *testing.T) {
		fake := &fakeRegistrationService{reg: &domain.EventRegistration{ID: regUUID}}
		ctrl := NewRegistrationController(testLogger, fake)
		body := `{"team_name":"Night Owls","additional_notes":"sub on bench","transaction_id":"TXN-1"}`
		rr, _ := call(t, ctrl.Register, http.MethodPost, "/", body, &playerPrincipal, map[string]string{"eventID": eventUUID})
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, domain.RegistrationRequest{TeamName: "Night Owls", AdditionalNotes: "sub on bench", TransactionID: "TXN-1"}, fake.lastRequest)
		assert.Equal(t, playerPrincipal, fake.lastPrincipal)
	})
}

func TestRegistrationController_IsRegistered(t *testing.T) {
	fake := &fakeRegistrationService{registered: true}
	ctrl := NewRegistrationController(testLogger, fake)

	rr, envelope := call(t, ctrl.IsRegistered, http.MethodGet, "/", "", &playerPrincipal, map[string]string{"eventID": eventUUID})
	require.Equal(t, http.StatusOK, rr.Code)
	var data RegistrationStatusResponse
	decodeData(t, envelope, &data)
	assert.Equal(t, RegistrationStatusResponse{EventID: eventUUID, Registered: true}, data)

	fake.err = fmt.Errorf("%w: event not found", domain.ErrNotFound)
	rr, _ = call(t, ctrl.IsRegistered, http.MethodGet, "/", "", &playerPrincipal, map[string]string{"eventID": eventUUID})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRegistrationController_Transitions(t *testing.T) {
	path := map[string]string{"registrationID": regUUID}

	t.Run("cancel returns a message", func(t *testing.T) {
		fake := &fakeRegistrationService{reg: &domain.EventRegistration{ID: regUUID, Status: domain.RegistrationCancelled}}
		ctrl := NewRegistrationController(testLogger, fake)
		rr, envelope := call(t, ctrl.CancelRegistration, http.MethodDelete, "/", "", &playerPrincipal, path)
		require.Equal(t, http.StatusOK, rr.Code)
		var msg helpers.MessageResponse
		decodeData(t, envelope, &msg)
		assert.Equal(t, "registration cancelled", msg.Message)
		assert.Equal(t, "cancel", fake.called)
		assert.Equal(t, regUUID, fake.lastID)
	})

	t.Run("cancel someone else's", func(t *testing.T) {
		fake := &fakeRegistrationService{err: fmt.Errorf("%w: not your registration", domain.ErrForbidden)}
		ctrl := NewRegistrationController(testLogger, fake)
		rr, _ := call(t, ctrl.CancelRegistration, http.MethodDelete, "/", "", &playerPrincipal, path)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("confirm", func(t *testing.T) {
		fake := &fakeRegistrationService{reg: &domain.EventRegistration{ID: regUUID, Status: domain.RegistrationConfirmed, PaymentVerified: true}}
		ctrl := NewRegistrationController(testLogger, fake)
		rr, envelope := call(t, ctrl.ConfirmRegistration, http.MethodPut, "/", "", &organizerPrincipal, path)
		require.Equal(t, http.StatusOK, rr.Code)
		var reg domain.EventRegistration
		decodeData(t, envelope, &reg)
		assert.True(t, reg.PaymentVerified)
		assert.Equal(t, organizerPrincipal, fake.lastPrincipal)
	})

	t.Run("confirm twice", func(t *testing.T) {
		fake := &fakeRegistrationService{err: fmt.Errorf("%w: registration is already confirmed", domain.ErrInvalidInput)}
		ctrl := NewRegistrationController(testLogger, fake)
		rr, envelope := call(t, ctrl.ConfirmRegistration, http.MethodPut, "/", "", &organizerPrincipal, path)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, envelope.Error.Message, "already confirmed")
	})

	t.Run("reject with reason", func(t *testing.T) {
		fake := &fakeRegistrationService{reg: &domain.EventRegistration{ID: regUUID, Status: domain.RegistrationRejected}}
		ctrl := NewRegistrationController(testLogger, fake)
		rr, _ := call(t, ctrl.RejectRegistration, http.MethodPut, "/", `{"reason":"payment not received"}`, &organizerPrincipal, path)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "reject", fake.called)
		assert.Equal(t, "payment not received", fake.lastReason)
	})

	t.Run("reject with unknown field", func(t *testing.T) {
		ctrl := NewRegistrationController(testLogger, &fakeRegistrationService{})
		rr, _ := call(t, ctrl.RejectRegistration, http.MethodPut, "/", `{"why":"x"}`, &organizerPrincipal, path)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid registration id", func(t *testing.T) {
		ctrl := NewRegistrationController(testLogger, &fakeRegistrationService{})
		rr, _ := call(t, ctrl.ConfirmRegistration, http.MethodPut, "/", "", &organizerPrincipal, map[string]string{"registrationID": "42"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRegistrationController_Queries(t *testing.T) {
	regs := []*domain.EventRegistration{
		{ID: "r-1", Status: domain.RegistrationConfirmed},
		{ID: "r-2", Status: domain.RegistrationPending},
	}

	t.Run("my registrations are paged", func(t *testing.T) {
		fake := &fakeRegistrationService{regs: regs, total: 12}
		ctrl := NewRegistrationController(testLogger, fake)
		rr, envelope := call(t, ctrl.ListMyRegistrations, http.MethodGet, "/api/registrations/me?size=5&sort_dir=asc", "", &playerPrincipal, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "mine", fake.called)
		assert.Equal(t, domain.SortAsc, fake.lastParams.SortDir)

		var page RegistrationPage
		decodeData(t, envelope, &page)
		require.Len(t, page.Items, 2)
		assert.Equal(t, helpers.PaginationMeta{Page: 0, Size: 5, Total: 12, TotalPages: 3}, page.Pagination)
	})

	t.Run("event registrations", func(t *testing.T) {
		fake := &fakeRegistrationService{regs: regs, total: 2}
		ctrl := NewRegistrationController(testLogger, fake)
		rr, _ := call(t, ctrl.ListEventRegistrations, http.MethodGet, "/?page=0", "", &organizerPrincipal, map[string]string{"eventID": eventUUID})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "event", fake.called)
		assert.Equal(t, eventUUID, fake.lastID)
	})

	t.Run("confirmed list is never null", func(t *testing.T) {
		fake := &fakeRegistrationService{}
		ctrl := NewRegistrationController(testLogger, fake)
		rr, _ := call(t, ctrl.ListConfirmedRegistrations, http.MethodGet, "/", "", &organizerPrincipal, map[string]string{"eventID": eventUUID})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"data":[]`)
	})

	t.Run("confirmed list forbidden for other organizers", func(t *testing.T) {
		fake := &fakeRegistrationService{err: fmt.Errorf("%w: not your event", domain.ErrForbidden)}
		ctrl := NewRegistrationController(testLogger, fake)
		rr, _ := call(t, ctrl.ListConfirmedRegistrations, http.MethodGet, "/", "", &organizerPrincipal, map[string]string{"eventID": eventUUID})
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("get registration", func(t *testing.T) {
		fake := &fakeRegistrationService{reg: &domain.EventRegistration{ID: regUUID}}
		ctrl := NewRegistrationController(testLogger, fake)
		rr, _ := call(t, ctrl.GetRegistration, http.MethodGet, "/", "", &adminPrincipal, map[string]string{"registrationID": regUUID})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "get", fake.called)
	})

	t.Run("storage failure", func(t *testing.T) {
		fake := &fakeRegistrationService{err: errors.New("deadlock detected")}
		ctrl := NewRegistrationController(testLogger, fake)
		rr, envelope := call(t, ctrl.GetRegistration, http.MethodGet, "/", "", &adminPrincipal, map[string]string{"registrationID": regUUID})
		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "internal server error", envelope.Error.Message)
	})
}
