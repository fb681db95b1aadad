package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"playerone/internal/domain"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() Option { return WithClock(func() time.Time { return testNow }) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	player    = domain.Principal{UserID: "u-player", Username: "player", Role: domain.RolePlayer}
	player2   = domain.Principal{UserID: "u-player2", Username: "player2", Role: domain.RolePlayer}
	player3   = domain.Principal{UserID: "u-player3", Username: "player3", Role: domain.RolePlayer}
	organizer = domain.Principal{UserID: "u-org", Username: "org", Role: domain.RoleOrganizer}
	otherOrg  = domain.Principal{UserID: "u-org2", Username: "org2", Role: domain.RoleOrganizer}
	admin     = domain.Principal{UserID: "u-admin", Username: "admin", Role: domain.RoleAdmin}
)

// openEvent returns an event owned by organizer whose registration window contains testNow.
func openEvent(id string, max int) *domain.Event {
	return &domain.Event{
		ID:                    id,
		EventCode:             "EVT-20260601-" + id,
		Name:                  "Friday Cup " + id,
		GameName:              "Valorant",
		EventDate:             time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:             "18:00",
		EndTime:               "22:00",
		RegistrationOpenDate:  testNow.Add(-24 * time.Hour),
		RegistrationCloseDate: testNow.Add(72 * time.Hour),
		ParticipationType:     domain.ParticipationSolo,
		TeamSize:              1,
		MaxParticipants:       max,
		MinParticipants:       2,
		OrganizerID:           organizer.UserID,
		OrganizerName:         organizer.Username,
		Status:                domain.StatusRegistrationOpen,
		Visibility:            domain.VisibilityPublic,
		CreatedAt:             testNow.Add(-48 * time.Hour),
		UpdatedAt:             testNow.Add(-48 * time.Hour),
	}
}

// fakeEventRepo is an in-memory EventRepository for tests. Reads return copies,
// like rows loaded from the database.
type fakeEventRepo struct {
	byID    map[string]*domain.Event
	nextID  int
	seq     int64
	err     error // if set, every call returns it
	locked  []string
	advance int64 // returned by AdvanceStatuses
	regs    *fakeRegistrationRepo
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{byID: make(map[string]*domain.Event), nextID: 1}
	for _, e := range events {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeEventRepo) get(id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) NextCodeSequence(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.seq++
	return f.seq, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return f.get(id)
}

func (f *fakeEventRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	f.locked = append(f.locked, "event:"+id)
	return f.get(id)
}

func (f *fakeEventRepo) GetByEventCode(ctx context.Context, eventCode string) (*domain.Event, error) {
	code := strings.TrimSpace(eventCode)
	for _, e := range f.byID {
		if strings.EqualFold(e.EventCode, code) {
			return f.get(e.ID)
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	if _, err := f.get(id); err != nil {
		return nil, err
	}
	patch.ApplyTo(f.byID[id])
	f.byID[id].UpdatedAt = testNow
	return f.get(id)
}

func (f *fakeEventRepo) UpdateStatus(ctx context.Context, id string, status domain.EventStatus, remarks domain.Optional[string]) (*domain.Event, error) {
	if _, err := f.get(id); err != nil {
		return nil, err
	}
	f.byID[id].Status = status
	if remarks.IsSet {
		f.byID[id].Remarks = remarks.Val
	}
	return f.get(id)
}

func (f *fakeEventRepo) AdjustSlotsFilled(ctx context.Context, id string, delta int) error {
	if _, err := f.get(id); err != nil {
		return err
	}
	e := f.byID[id]
	next := max(e.SlotsFilled+delta, 0)
	if next > e.MaxParticipants {
		return domain.ErrEventFull
	}
	e.SlotsFilled = next
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, err := f.get(id); err != nil {
		return err
	}
	delete(f.byID, id)
	// registrations cascade with their event
	if f.regs != nil {
		for regID, r := range f.regs.byID {
			if r.EventID == id {
				delete(f.regs.byID, regID)
			}
		}
	}
	return nil
}

func (f *fakeEventRepo) List(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []*domain.Event
	for _, e := range f.byID {
		if filter.OrganizerID != "" && e.OrganizerID != filter.OrganizerID {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Visibility != "" && e.Visibility != filter.Visibility {
			continue
		}
		if filter.GameName != "" && !strings.EqualFold(e.GameName, filter.GameName) {
			continue
		}
		if filter.Keyword != "" {
			kw := strings.ToLower(filter.Keyword)
			if !strings.Contains(strings.ToLower(e.Name+" "+e.GameName+" "+e.Description), kw) {
				continue
			}
		}
		if filter.DateFrom != nil && e.EventDate.Before(*filter.DateFrom) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EventDate.Equal(out[j].EventDate) {
			return out[i].EventDate.Before(out[j].EventDate)
		}
		return out[i].ID < out[j].ID
	})
	total := len(out)
	start := min(params.Offset(), total)
	end := min(start+params.PageSize, total)
	return out[start:end], total, nil
}

func (f *fakeEventRepo) AdvanceStatuses(ctx context.Context, now time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.advance, nil
}

// fakeRegistrationRepo is an in-memory EventRegistrationRepository. It fills
// the projection fields from the users it knows about.
type fakeRegistrationRepo struct {
	byID   map[string]*domain.EventRegistration
	nextID int
	emails map[string]string
	events *fakeEventRepo
	err    error
}

func newFakeRegistrationRepo(events *fakeEventRepo) *fakeRegistrationRepo {
	f := &fakeRegistrationRepo{
		byID:   make(map[string]*domain.EventRegistration),
		nextID: 1,
		emails: map[string]string{
			player.UserID:  "player@example.com",
			player2.UserID: "player2@example.com",
			player3.UserID: "player3@example.com",
		},
		events: events,
	}
	events.regs = f
	return f
}

func (f *fakeRegistrationRepo) get(id string) (*domain.EventRegistration, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	cp.UserEmail = f.emails[r.UserID]
	cp.Username = strings.TrimPrefix(r.UserID, "u-")
	if e, ok := f.events.byID[r.EventID]; ok {
		cp.EventName = e.Name
	}
	return &cp, nil
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.EventRegistration) error {
	if f.err != nil {
		return f.err
	}
	for _, r := range f.byID {
		if r.EventID == reg.EventID && r.UserID == reg.UserID && r.Status.Active() {
			return domain.ErrDuplicateRegistration
		}
	}
	reg.ID = fmt.Sprintf("reg-%d", f.nextID)
	f.nextID++
	cp := *reg
	f.byID[reg.ID] = &cp
	return nil
}

func (f *fakeRegistrationRepo) GetByID(ctx context.Context, id string) (*domain.EventRegistration, error) {
	return f.get(id)
}

func (f *fakeRegistrationRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.EventRegistration, error) {
	// lock order is traced on the event repo
	f.events.locked = append(f.events.locked, "registration:"+id)
	return f.get(id)
}

func (f *fakeRegistrationRepo) ExistsActive(ctx context.Context, eventID, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, r := range f.byID {
		if r.EventID == eventID && r.UserID == userID && r.Status.Active() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRegistrationRepo) UpdateStatus(ctx context.Context, id string, change domain.RegistrationStatusChange) (*domain.EventRegistration, error) {
	if _, err := f.get(id); err != nil {
		return nil, err
	}
	r := f.byID[id]
	r.Status = change.Status
	r.UpdatedAt = change.UpdatedAt
	if change.CancelledAt != nil {
		r.CancelledAt = change.CancelledAt
	}
	if change.CancellationReason != nil {
		r.CancellationReason = change.CancellationReason
	}
	if change.PaymentVerified.IsSet {
		r.PaymentVerified = change.PaymentVerified.Val
	}
	return f.get(id)
}

func (f *fakeRegistrationRepo) filter(keep func(*domain.EventRegistration) bool) []*domain.EventRegistration {
	var out []*domain.EventRegistration
	for id, r := range f.byID {
		if keep(r) {
			cp, _ := f.get(id)
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func page(regs []*domain.EventRegistration, params domain.PaginationParams) ([]*domain.EventRegistration, int) {
	total := len(regs)
	start := min(params.Offset(), total)
	end := min(start+params.PageSize, total)
	return regs[start:end], total
}

func (f *fakeRegistrationRepo) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.EventRegistration, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	items, total := page(f.filter(func(r *domain.EventRegistration) bool { return r.EventID == eventID }), params)
	return items, total, nil
}

func (f *fakeRegistrationRepo) ListByEventIDAndStatus(ctx context.Context, eventID string, statuses ...domain.RegistrationStatus) ([]*domain.EventRegistration, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.filter(func(r *domain.EventRegistration) bool {
		return r.EventID == eventID && slices.Contains(statuses, r.Status)
	}), nil
}

func (f *fakeRegistrationRepo) ListByUserID(ctx context.Context, userID string, params domain.PaginationParams) ([]*domain.EventRegistration, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	items, total := page(f.filter(func(r *domain.EventRegistration) bool { return r.UserID == userID }), params)
	return items, total, nil
}

// fakeTx runs fn directly and restores both stores when it fails, the way a
// rolled back transaction would.
type fakeTx struct {
	events *fakeEventRepo
	regs   *fakeRegistrationRepo
	calls  int
}

func (t *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	events := make(map[string]domain.Event, len(t.events.byID))
	for id, e := range t.events.byID {
		events[id] = *e
	}
	regs := make(map[string]domain.EventRegistration)
	if t.regs != nil {
		for id, r := range t.regs.byID {
			regs[id] = *r
		}
	}
	if err := fn(ctx); err != nil {
		t.events.byID = make(map[string]*domain.Event, len(events))
		for id, e := range events {
			t.events.byID[id] = &e
		}
		if t.regs != nil {
			t.regs.byID = make(map[string]*domain.EventRegistration, len(regs))
			for id, r := range regs {
				t.regs.byID[id] = &r
			}
		}
		return err
	}
	return nil
}

// fakeEmailService records what would have been sent.
type fakeEmailService struct {
	welcome   []*domain.WelcomeEmailData
	confirmed []*domain.RegistrationEmailData
	rejected  []*domain.RegistrationEmailData
	cancelled []*domain.EventCancelledEmailData
	err       error
}

func (f *fakeEmailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	f.welcome = append(f.welcome, data)
	return f.err
}

func (f *fakeEmailService) SendRegistrationConfirmed(ctx context.Context, data *domain.RegistrationEmailData) error {
	f.confirmed = append(f.confirmed, data)
	return f.err
}

func (f *fakeEmailService) SendRegistrationRejected(ctx context.Context, data *domain.RegistrationEmailData) error {
	f.rejected = append(f.rejected, data)
	return f.err
}

func (f *fakeEmailService) SendEventCancelled(ctx context.Context, data *domain.EventCancelledEmailData) error {
	f.cancelled = append(f.cancelled, data)
	return f.err
}

// fakeUserRepo is an in-memory UserRepository enforcing unique username, email and phone.
type fakeUserRepo struct {
	byID   map[string]*domain.User
	nextID int
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.byID {
		switch {
		case existing.Username == u.Username:
			return fmt.Errorf("%w: username is already taken", domain.ErrDuplicateUser)
		case existing.Email == u.Email:
			return fmt.Errorf("%w: email is already registered", domain.ErrDuplicateUser)
		case existing.PhoneNumber == u.PhoneNumber:
			return fmt.Errorf("%w: phone number is already registered", domain.ErrDuplicateUser)
		}
	}
	u.ID = fmt.Sprintf("u-%d", f.nextID)
	f.nextID++
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

// plainHasher stores "salt:password" so tests can assert on it without bcrypt cost.
type plainHasher struct{}

func (plainHasher) GenerateSalt() (string, error) { return "salt", nil }

func (plainHasher) Hash(salt, password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password is empty", domain.ErrInvalidInput)
	}
	return salt + ":" + password, nil
}

func (plainHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID, username string, role domain.Role, expiry time.Duration) (string, error) {
	return "token-" + userID + "-" + string(role), nil
}
