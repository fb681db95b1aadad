package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"playerone/internal/domain"
)

var userColumnNames = []string{
	"id", "username", "email", "phone_number", "password_hash", "salt", "role", "enabled",
	"game_id", "in_game_name", "created_at", "updated_at",
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	gameID := "5123-9981"
	ign := "ace"

	tests := []struct {
		name      string
		mock      func(mock sqlmock.Sqlmock)
		wantID    string
		errIs     error
		errSubstr string
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "alice@example.com", "+15550001", "hash", "salt", "PLAYER", true,
						gameID, ign, at, at).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-uuid-1"))
			},
			wantID: "user-uuid-1",
		},
		{
			name: "duplicate username",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})
			},
			errIs:     domain.ErrDuplicateUser,
			errSubstr: "username is already taken",
		},
		{
			name: "duplicate phone",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "users_phone_number_key"})
			},
			errIs:     domain.ErrDuplicateUser,
			errSubstr: "phone number",
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			errIs: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			u := domain.NewUser("alice", "alice@example.com", "+15550001", domain.RolePlayer, at, at)
			u.PasswordHash = "hash"
			u.Salt = "salt"
			u.GameID = &gameID
			u.InGameName = &ign
			err = NewUserRepository(db).Create(ctx, u)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				if tt.errSubstr != "" {
					require.Contains(t, err.Error(), tt.errSubstr)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, u.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		username string
		mock     func(mock sqlmock.Sqlmock)
		want     *domain.User
		errIs    error
	}{
		{
			name:     "organizer without player fields",
			username: "bob",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users WHERE username = \$1`).
					WithArgs("bob").
					WillReturnRows(sqlmock.NewRows(userColumnNames).
						AddRow("user-2", "bob", "bob@example.com", "+15550002", "h", "s", "ORGANIZER", true, nil, nil, at, at))
			},
			want: &domain.User{
				ID: "user-2", Username: "bob", Email: "bob@example.com", PhoneNumber: "+15550002",
				PasswordHash: "h", Salt: "s", Role: domain.RoleOrganizer, Enabled: true,
				CreatedAt: at, UpdatedAt: at,
			},
		},
		{
			name:     "not found",
			username: "nobody",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users WHERE username = \$1`).
					WithArgs("nobody").
					WillReturnError(sql.ErrNoRows)
			},
			errIs: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewUserRepository(db).GetByUsername(ctx, tt.username)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID_playerFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(userColumnNames).
			AddRow("user-1", "alice", "alice@example.com", "+15550001", "h", "s", "PLAYER", true, "5123", "ace", at, at))

	got, err := NewUserRepository(db).GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, domain.RolePlayer, got.Role)
	require.NotNil(t, got.GameID)
	require.Equal(t, "5123", *got.GameID)
	require.NotNil(t, got.InGameName)
	require.Equal(t, "ace", *got.InGameName)
	require.NoError(t, mock.ExpectationsWereMet())
}
