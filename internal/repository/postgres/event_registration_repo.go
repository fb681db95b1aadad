package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"playerone/internal/domain"
)

const registrationSelect = `
	SELECT r.id, r.event_id, e.event_name, r.user_id, u.username, u.email, r.status, r.team_name,
		r.additional_notes, r.transaction_id, r.amount_paid, r.payment_verified, r.registered_at,
		r.updated_at, r.cancelled_at, r.cancellation_reason
	FROM event_registrations r
	JOIN events e ON e.id = r.event_id
	JOIN users u ON u.id = r.user_id
`

type eventRegistrationRepository struct {
	DB *sql.DB
}

func NewEventRegistrationRepository(db *sql.DB) domain.EventRegistrationRepository {
	return &eventRegistrationRepository{
		DB: db,
	}
}

func scanRegistration(row rowScanner) (*domain.EventRegistration, error) {
	reg := &domain.EventRegistration{}
	var txNull, reasonNull sql.NullString
	var amountNull sql.NullFloat64
	var cancelledNull sql.NullTime
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.EventName, &reg.UserID, &reg.Username, &reg.UserEmail, &reg.Status, &reg.TeamName,
		&reg.AdditionalNotes, &txNull, &amountNull, &reg.PaymentVerified, &reg.RegisteredAt,
		&reg.UpdatedAt, &cancelledNull, &reasonNull,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if txNull.Valid {
		reg.TransactionID = &txNull.String
	}
	if amountNull.Valid {
		reg.AmountPaid = &amountNull.Float64
	}
	if cancelledNull.Valid {
		reg.CancelledAt = &cancelledNull.Time
	}
	if reasonNull.Valid {
		reg.CancellationReason = &reasonNull.String
	}
	return reg, nil
}

func (r *eventRegistrationRepository) Create(ctx context.Context, reg *domain.EventRegistration) error {
	query := `
		INSERT INTO event_registrations (event_id, user_id, status, team_name, additional_notes,
			transaction_id, amount_paid, payment_verified, registered_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query,
		reg.EventID, reg.UserID, reg.Status, reg.TeamName, reg.AdditionalNotes,
		reg.TransactionID, reg.AmountPaid, reg.PaymentVerified, reg.RegisteredAt, reg.UpdatedAt,
	).Scan(&reg.ID)
	if err != nil {
		if pqErrorCode(err) == pgUniqueViolation {
			return domain.ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

func (r *eventRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.EventRegistration, error) {
	query := registrationSelect + `WHERE r.id = $1`
	return scanRegistration(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *eventRegistrationRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.EventRegistration, error) {
	query := registrationSelect + `WHERE r.id = $1 FOR UPDATE OF r`
	return scanRegistration(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *eventRegistrationRepository) ExistsActive(ctx context.Context, eventID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM event_registrations
			WHERE event_id = $1 AND user_id = $2 AND status IN ('PENDING', 'CONFIRMED')
		)
	`
	var exists bool
	if err := conn(ctx, r.DB).QueryRowContext(ctx, query, eventID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *eventRegistrationRepository) UpdateStatus(ctx context.Context, id string, change domain.RegistrationStatusChange) (*domain.EventRegistration, error) {
	query := `
		UPDATE event_registrations
		SET status = $2,
			updated_at = $3,
			cancelled_at = COALESCE($4, cancelled_at),
			cancellation_reason = COALESCE($5, cancellation_reason),
			payment_verified = CASE WHEN $6 THEN $7 ELSE payment_verified END
		WHERE id = $1
	`
	result, err := conn(ctx, r.DB).ExecContext(ctx, query,
		id, change.Status, change.UpdatedAt, change.CancelledAt, change.CancellationReason,
		change.PaymentVerified.IsSet, change.PaymentVerified.Val,
	)
	if err != nil {
		return nil, err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *eventRegistrationRepository) list(ctx context.Context, where string, args []any, params domain.PaginationParams) ([]*domain.EventRegistration, int, error) {
	q := conn(ctx, r.DB)

	var total int
	countQuery := `SELECT COUNT(*) FROM event_registrations r ` + where
	if err := q.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := fmt.Sprintf(`%s%s %s LIMIT $%d OFFSET $%d`,
		registrationSelect, where,
		orderBy("r.", params, domain.RegistrationSortKeys, "registered_at", domain.SortDesc),
		n+1, n+2)
	args = append(args, params.PageSize, params.Offset())
	regs, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

func (r *eventRegistrationRepository) query(ctx context.Context, query string, args ...any) ([]*domain.EventRegistration, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.EventRegistration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *eventRegistrationRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.EventRegistration, int, error) {
	return r.list(ctx, `WHERE r.event_id = $1`, []any{eventID}, params)
}

func (r *eventRegistrationRepository) ListByEventIDAndStatus(ctx context.Context, eventID string, statuses ...domain.RegistrationStatus) ([]*domain.EventRegistration, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	query := registrationSelect + `WHERE r.event_id = $1 AND r.status = ANY($2) ORDER BY r.registered_at ASC, r.id ASC`
	return r.query(ctx, query, eventID, pq.Array(names))
}

func (r *eventRegistrationRepository) ListByUserID(ctx context.Context, userID string, params domain.PaginationParams) ([]*domain.EventRegistration, int, error) {
	return r.list(ctx, `WHERE r.user_id = $1`, []any{userID}, params)
}
