package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"playerone/internal/delivery/http/helpers"
	"playerone/internal/delivery/http/middleware"
	"playerone/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	eventUUID = "3f2b8c1e-7a44-4d0b-9a61-0c5f7e2d9b10"
	regUUID   = "b7e1c0d2-5f3a-4e89-8c2d-6a1f0e9b3c47"
)

var (
	playerPrincipal    = domain.Principal{UserID: "u-player", Username: "ace", Role: domain.RolePlayer}
	organizerPrincipal = domain.Principal{UserID: "u-org", Username: "host", Role: domain.RoleOrganizer}
	adminPrincipal     = domain.Principal{UserID: "u-admin", Username: "root", Role: domain.RoleAdmin}
)

// call runs handler against a request built from the arguments. A nil principal
// leaves the request unauthenticated.
func call(t *testing.T, handler http.HandlerFunc, method, target, body string, p *domain.Principal, pathValues map[string]string) (*httptest.ResponseRecorder, helpers.APIResponse) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	if p != nil {
		req = req.WithContext(middleware.SetPrincipal(req.Context(), *p))
	}
	rr := httptest.NewRecorder()
	handler(rr, req)

	var envelope helpers.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope), "response must be valid JSON envelope")
	return rr, envelope
}

// decodeData re-decodes the envelope data into out.
func decodeData(t *testing.T, envelope helpers.APIResponse, out any) {
	t.Helper()
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

type fakeEventService struct {
	lastPrincipal domain.Principal
	lastEvent     *domain.Event
	lastPatch     domain.EventPatch
	lastID        string
	lastCode      string
	lastReason    string
	view          *domain.EventView
	err           error
}

func (f *fakeEventService) result() (*domain.EventView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func (f *fakeEventService) CreateEvent(_ context.Context, p domain.Principal, event *domain.Event) (*domain.EventView, error) {
	f.lastPrincipal, f.lastEvent = p, event
	if f.err != nil {
		return nil, f.err
	}
	event.ID = eventUUID
	event.OrganizerID = p.UserID
	return &domain.EventView{Event: event, SlotsAvailable: event.MaxParticipants}, nil
}

func (f *fakeEventService) UpdateEvent(_ context.Context, p domain.Principal, eventID string, patch domain.EventPatch) (*domain.EventView, error) {
	f.lastPrincipal, f.lastID, f.lastPatch = p, eventID, patch
	return f.result()
}

func (f *fakeEventService) DeleteEvent(_ context.Context, p domain.Principal, eventID string) error {
	f.lastPrincipal, f.lastID = p, eventID
	return f.err
}

func (f *fakeEventService) PublishEvent(_ context.Context, p domain.Principal, eventID string) (*domain.EventView, error) {
	f.lastPrincipal, f.lastID = p, eventID
	return f.result()
}

func (f *fakeEventService) CancelEvent(_ context.Context, p domain.Principal, eventID, reason string) (*domain.EventView, error) {
	f.lastPrincipal, f.lastID, f.lastReason = p, eventID, reason
	return f.result()
}

func (f *fakeEventService) GetEvent(_ context.Context, eventID string) (*domain.EventView, error) {
	f.lastID = eventID
	return f.result()
}

func (f *fakeEventService) GetEventByCode(_ context.Context, eventCode string) (*domain.EventView, error) {
	f.lastCode = eventCode
	return f.result()
}

type fakeEventQueryService struct {
	called        string
	lastPrincipal domain.Principal
	lastParams    domain.PaginationParams
	lastArg       string
	views         []*domain.EventView
	total         int
	err           error
}

func (f *fakeEventQueryService) record(op string, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	f.called, f.lastParams = op, params
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.views, f.total, nil
}

func (f *fakeEventQueryService) ListPublicEvents(_ context.Context, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	return f.record("public", params)
}

func (f *fakeEventQueryService) ListUpcomingEvents(_ context.Context, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	return f.record("upcoming", params)
}

func (f *fakeEventQueryService) SearchEvents(_ context.Context, keyword string, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	f.lastArg = keyword
	return f.record("search", params)
}

func (f *fakeEventQueryService) ListEventsByGame(_ context.Context, gameName string, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	f.lastArg = gameName
	return f.record("game", params)
}

func (f *fakeEventQueryService) ListMyEvents(_ context.Context, p domain.Principal, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	f.lastPrincipal = p
	return f.record("mine", params)
}

func (f *fakeEventQueryService) ListAllEvents(_ context.Context, p domain.Principal, params domain.PaginationParams) ([]*domain.EventView, int, error) {
	f.lastPrincipal = p
	return f.record("all", params)
}

type fakeRegistrationService struct {
	called        string
	lastPrincipal domain.Principal
	lastID        string
	lastRequest   domain.RegistrationRequest
	lastReason    string
	lastParams    domain.PaginationParams
	reg           *domain.EventRegistration
	regs          []*domain.EventRegistration
	total         int
	registered    bool
	err           error
}

func (f *fakeRegistrationService) one(op string, p domain.Principal, id string) (*domain.EventRegistration, error) {
	f.called, f.lastPrincipal, f.lastID = op, p, id
	if f.err != nil {
		return nil, f.err
	}
	return f.reg, nil
}

func (f *fakeRegistrationService) page(op string, p domain.Principal, params domain.PaginationParams) ([]*domain.EventRegistration, int, error) {
	f.called, f.lastPrincipal, f.lastParams = op, p, params
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.regs, f.total, nil
}

func (f *fakeRegistrationService) Register(_ context.Context, p domain.Principal, eventID string, req domain.RegistrationRequest) (*domain.EventRegistration, error) {
	f.lastRequest = req
	return f.one("register", p, eventID)
}

func (f *fakeRegistrationService) CancelRegistration(_ context.Context, p domain.Principal, registrationID string) (*domain.EventRegistration, error) {
	return f.one("cancel", p, registrationID)
}

func (f *fakeRegistrationService) ConfirmRegistration(_ context.Context, p domain.Principal, registrationID string) (*domain.EventRegistration, error) {
	return f.one("confirm", p, registrationID)
}

func (f *fakeRegistrationService) RejectRegistration(_ context.Context, p domain.Principal, registrationID, reason string) (*domain.EventRegistration, error) {
	f.lastReason = reason
	return f.one("reject", p, registrationID)
}

func (f *fakeRegistrationService) ListEventRegistrations(_ context.Context, p domain.Principal, eventID string, params domain.PaginationParams) ([]*domain.EventRegistration, int, error) {
	f.lastID = eventID
	return f.page("event", p, params)
}

func (f *fakeRegistrationService) ListConfirmedRegistrations(_ context.Context, p domain.Principal, eventID string) ([]*domain.EventRegistration, error) {
	f.lastID = eventID
	regs, _, err := f.page("confirmed", p, domain.PaginationParams{})
	return regs, err
}

func (f *fakeRegistrationService) ListMyRegistrations(_ context.Context, p domain.Principal, params domain.PaginationParams) ([]*domain.EventRegistration, int, error) {
	return f.page("mine", p, params)
}

func (f *fakeRegistrationService) GetRegistration(_ context.Context, p domain.Principal, registrationID string) (*domain.EventRegistration, error) {
	return f.one("get", p, registrationID)
}

func (f *fakeRegistrationService) IsRegistered(_ context.Context, p domain.Principal, eventID string) (bool, error) {
	f.called, f.lastPrincipal, f.lastID = "is-registered", p, eventID
	return f.registered, f.err
}

type fakeUserService struct {
	lastInput    domain.SignUpInput
	lastUsername string
	lastPassword string
	lastID       string
	result       *domain.AuthResult
	user         *domain.User
	err          error
}

func (f *fakeUserService) SignUp(_ context.Context, in domain.SignUpInput) (*domain.AuthResult, error) {
	f.lastInput = in
	return f.result, f.err
}

func (f *fakeUserService) Login(_ context.Context, username, password string) (*domain.AuthResult, error) {
	f.lastUsername, f.lastPassword = username, password
	return f.result, f.err
}

func (f *fakeUserService) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.lastID = id
	return f.user, f.err
}

func (f *fakeUserService) ResolvePrincipal(_ context.Context, userID string) (domain.Principal, error) {
	return domain.Principal{UserID: userID, Role: domain.RolePlayer}, f.err
}
