package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"playerone/internal/domain"
)

const userColumns = `id, username, email, phone_number, password_hash, salt, role, enabled,
	game_id, in_game_name, created_at, updated_at`

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	var gameIDNull, ignNull sql.NullString
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PhoneNumber, &u.PasswordHash, &u.Salt, &u.Role, &u.Enabled,
		&gameIDNull, &ignNull, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if gameIDNull.Valid {
		u.GameID = &gameIDNull.String
	}
	if ignNull.Valid {
		u.InGameName = &ignNull.String
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (username, email, phone_number, password_hash, salt, role, enabled,
			game_id, in_game_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query,
		u.Username, u.Email, u.PhoneNumber, u.PasswordHash, u.Salt, u.Role, u.Enabled,
		u.GameID, u.InGameName, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if pqErrorCode(err) == pgUniqueViolation {
			switch pqConstraint(err) {
			case "users_username_key":
				return fmt.Errorf("%w: username is already taken", domain.ErrDuplicateUser)
			case "users_email_key":
				return fmt.Errorf("%w: email is already registered", domain.ErrDuplicateUser)
			case "users_phone_number_key":
				return fmt.Errorf("%w: phone number is already registered", domain.ErrDuplicateUser)
			}
			return domain.ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(conn(ctx, r.DB).QueryRowContext(ctx, query, username))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
}
