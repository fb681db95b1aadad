package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"playerone/internal/domain"
)

const eventColumns = `id, event_code, event_name, game_name, description, event_date,
	to_char(event_start_time, 'HH24:MI'), to_char(event_end_time, 'HH24:MI'),
	registration_open_date, registration_close_date, participation_type, team_size,
	max_participants, min_participants, allowed_ranks, platform, is_paid, entry_fee, prize_pool,
	prize_distribution, refund_policy, map, mode, server_region, room_id, room_password, rules,
	organizer_id, organizer_name, contact, slots_filled, status, thumbnail_url, live_stream_link,
	remarks, visibility, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.EventCode, &e.Name, &e.GameName, &e.Description, &e.EventDate,
		&e.StartTime, &e.EndTime,
		&e.RegistrationOpenDate, &e.RegistrationCloseDate, &e.ParticipationType, &e.TeamSize,
		&e.MaxParticipants, &e.MinParticipants, &e.AllowedRanks, &e.Platform, &e.IsPaid, &e.EntryFee, &e.PrizePool,
		&e.PrizeDistribution, &e.RefundPolicy, &e.Map, &e.Mode, &e.ServerRegion, &e.RoomID, &e.RoomPassword, &e.Rules,
		&e.OrganizerID, &e.OrganizerName, &e.Contact, &e.SlotsFilled, &e.Status, &e.ThumbnailURL, &e.LiveStreamLink,
		&e.Remarks, &e.Visibility, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func eventWriteError(err error) error {
	switch pqErrorCode(err) {
	case pgCheckViolation:
		if pqConstraint(err) == "events_slots_check" {
			return fmt.Errorf("%w: slot count would exceed max participants", domain.ErrInvalidInput)
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, pqConstraint(err))
	case pgUniqueViolation:
		return fmt.Errorf("%w: event code already exists", domain.ErrInvalidInput)
	}
	return err
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (
			event_code, event_name, game_name, description, event_date, event_start_time, event_end_time,
			registration_open_date, registration_close_date, participation_type, team_size,
			max_participants, min_participants, allowed_ranks, platform, is_paid, entry_fee, prize_pool,
			prize_distribution, refund_policy, map, mode, server_region, room_id, room_password, rules,
			organizer_id, organizer_name, contact, slots_filled, status, thumbnail_url, live_stream_link,
			remarks, visibility, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query,
		e.EventCode, e.Name, e.GameName, e.Description, domain.DateOnly(e.EventDate), e.StartTime, e.EndTime,
		e.RegistrationOpenDate, e.RegistrationCloseDate, e.ParticipationType, e.TeamSize,
		e.MaxParticipants, e.MinParticipants, e.AllowedRanks, e.Platform, e.IsPaid, e.EntryFee, e.PrizePool,
		e.PrizeDistribution, e.RefundPolicy, e.Map, e.Mode, e.ServerRegion, e.RoomID, e.RoomPassword, e.Rules,
		e.OrganizerID, e.OrganizerName, e.Contact, e.SlotsFilled, e.Status, e.ThumbnailURL, e.LiveStreamLink,
		e.Remarks, e.Visibility, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return eventWriteError(err)
	}
	return nil
}

func (r *eventRepository) NextCodeSequence(ctx context.Context) (int64, error) {
	var n int64
	if err := conn(ctx, r.DB).QueryRowContext(ctx, `SELECT nextval('event_code_seq')`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *eventRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`
	return scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *eventRepository) GetByEventCode(ctx context.Context, eventCode string) (*domain.Event, error) {
	code := strings.ToUpper(strings.TrimSpace(eventCode))
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_code = $1`
	return scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, query, code))
}

type column struct {
	name string
	set  bool
	val  any
}

func col[T any](name string, o domain.Optional[T]) column {
	return column{name: name, set: o.IsSet, val: o.Val}
}

func patchColumns(p domain.EventPatch) []column {
	eventDate := col("event_date", p.EventDate)
	if eventDate.set {
		eventDate.val = domain.DateOnly(p.EventDate.Val)
	}
	return []column{
		col("event_name", p.Name),
		col("game_name", p.GameName),
		col("description", p.Description),
		eventDate,
		col("event_start_time", p.StartTime),
		col("event_end_time", p.EndTime),
		col("registration_open_date", p.RegistrationOpenDate),
		col("registration_close_date", p.RegistrationCloseDate),
		col("participation_type", p.ParticipationType),
		col("team_size", p.TeamSize),
		col("max_participants", p.MaxParticipants),
		col("min_participants", p.MinParticipants),
		col("allowed_ranks", p.AllowedRanks),
		col("platform", p.Platform),
		col("is_paid", p.IsPaid),
		col("entry_fee", p.EntryFee),
		col("prize_pool", p.PrizePool),
		col("prize_distribution", p.PrizeDistribution),
		col("refund_policy", p.RefundPolicy),
		col("map", p.Map),
		col("mode", p.Mode),
		col("server_region", p.ServerRegion),
		col("room_id", p.RoomID),
		col("room_password", p.RoomPassword),
		col("rules", p.Rules),
		col("contact", p.Contact),
		col("thumbnail_url", p.ThumbnailURL),
		col("live_stream_link", p.LiveStreamLink),
		col("remarks", p.Remarks),
		col("visibility", p.Visibility),
	}
}

func (r *eventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	n := 1
	for _, c := range patchColumns(patch) {
		if !c.set {
			continue
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", c.name, n))
		args = append(args, c.val)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, eventColumns)
	e, err := scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, eventWriteError(err)
	}
	return e, nil
}

func (r *eventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus, remarks domain.Optional[string]) (*domain.Event, error) {
	setClauses := []string{"status = $1", "updated_at = NOW()"}
	args := []any{status, id}
	if remarks.IsSet {
		setClauses = append(setClauses, "remarks = $3")
		args = append(args, remarks.Val)
	}
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $2
		RETURNING %s
	`, strings.Join(setClauses, ", "), eventColumns)
	return scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, query, args...))
}

func (r *eventRepository) AdjustSlotsFilled(ctx context.Context, id string, delta int) error {
	query := `
		UPDATE events SET slots_filled = GREATEST(slots_filled + $2, 0), updated_at = NOW()
		WHERE id = $1
	`
	result, err := conn(ctx, r.DB).ExecContext(ctx, query, id, delta)
	if err != nil {
		if pqConstraint(err) == "events_slots_check" {
			return domain.ErrEventFull
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := conn(ctx, r.DB).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func eventWhere(f domain.EventFilter) (string, []any) {
	var clauses []string
	var args []any
	add := func(format string, v any) {
		args = append(args, v)
		clauses = append(clauses, fmt.Sprintf(format, len(args)))
	}
	if f.OrganizerID != "" {
		add("organizer_id = $%d", f.OrganizerID)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.Visibility != "" {
		add("visibility = $%d", f.Visibility)
	}
	if f.GameName != "" {
		add("game_name ILIKE $%d", "%"+escapeLike(f.GameName)+"%")
	}
	if f.Keyword != "" {
		args = append(args, "%"+escapeLike(f.Keyword)+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(event_name ILIKE $%d OR game_name ILIKE $%d OR description ILIKE $%d)", n, n, n))
	}
	if f.DateFrom != nil {
		add("event_date >= $%d", domain.DateOnly(*f.DateFrom))
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, int, error) {
	where, args := eventWhere(filter)
	q := conn(ctx, r.DB)

	var total int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := fmt.Sprintf(`SELECT %s FROM events%s %s LIMIT $%d OFFSET $%d`,
		eventColumns, where,
		orderBy("", params, domain.EventSortKeys, "event_date", domain.SortAsc),
		n+1, n+2)
	args = append(args, params.PageSize, params.Offset())
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// AdvanceStatuses applies the time-driven transitions in order, so an event whose
// window has already passed moves through every intermediate status in one call.
func (r *eventRepository) AdvanceStatuses(ctx context.Context, now time.Time) (int64, error) {
	statements := []string{
		`UPDATE events SET status = 'REGISTRATION_OPEN', updated_at = NOW()
		 WHERE status = 'UPCOMING' AND registration_open_date <= $1 AND registration_close_date > $1`,
		`UPDATE events SET status = 'REGISTRATION_CLOSED', updated_at = NOW()
		 WHERE status IN ('UPCOMING', 'REGISTRATION_OPEN') AND registration_close_date <= $1`,
		`UPDATE events SET status = 'ONGOING', updated_at = NOW()
		 WHERE status = 'REGISTRATION_CLOSED' AND (event_date + event_start_time) AT TIME ZONE 'UTC' <= $1`,
		`UPDATE events SET status = 'COMPLETED', updated_at = NOW()
		 WHERE status = 'ONGOING' AND (event_date + event_end_time) AT TIME ZONE 'UTC' <= $1`,
	}
	q := conn(ctx, r.DB)
	var total int64
	for _, stmt := range statements {
		result, err := q.ExecContext(ctx, stmt, now)
		if err != nil {
			return total, err
		}
		n, _ := result.RowsAffected()
		total += n
	}
	return total, nil
}
