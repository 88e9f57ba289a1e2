package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evenly-app/backend/internal/domain/entity"
	"github.com/evenly-app/backend/internal/domain/repository"
)

const testQueryTimeout = 2 * time.Second

func TestUserRepository_Create(t *testing.T) {
	created := time.Now().UTC()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "inserts and fills id and created_at",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).
					AddRow("u-1", created)
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("ana@example.com", "Ana", "salt:digest").
					WillReturnRows(rows)
			},
		},
		{
			name: "unique violation maps to ErrDuplicateEmail",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("ana@example.com", "Ana", "salt:digest").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			},
			wantErr: repository.ErrDuplicateEmail,
		},
		{
			name: "other errors pass through",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("ana@example.com", "Ana", "salt:digest").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()
			tt.setupMock(mock)

			repo := NewUserRepository(mock, testQueryTimeout)
			u := &entity.User{Email: "ana@example.com", Name: "Ana", PasswordHash: "salt:digest"}
			err = repo.Create(context.Background(), u)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, "u-1", u.ID)
				assert.Equal(t, created, u.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	created := time.Now().UTC()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		want      *entity.User
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}).
					AddRow("u-1", "ana@example.com", "Ana", "salt:digest", created)
				mock.ExpectQuery(`SELECT id, email, name, password_hash, created_at`).
					WithArgs("ana@example.com").
					WillReturnRows(rows)
			},
			want: &entity.User{ID: "u-1", Email: "ana@example.com", Name: "Ana", PasswordHash: "salt:digest", CreatedAt: created},
		},
		{
			name: "no rows maps to ErrNotFound",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, email, name, password_hash, created_at`).
					WithArgs("nobody@example.com").
					WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}))
			},
			wantErr: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()
			tt.setupMock(mock)

			repo := NewUserRepository(mock, testQueryTimeout)
			email := "ana@example.com"
			if tt.wantErr != nil {
				email = "nobody@example.com"
			}
			got, err := repo.GetByEmail(context.Background(), email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, email, name, password_hash, created_at`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}))

	repo := NewUserRepository(mock, testQueryTimeout)
	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
