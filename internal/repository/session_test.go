package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelcraft/catalog-server/internal/model"
)

var sessionColumns = []string{"id", "session_id", "created_at", "expires_at"}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestAdminSessionRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminSessionRepository(db)

	now := time.Now()
	expiresAt := now.Add(24 * time.Hour)

	rows := sqlmock.NewRows(sessionColumns).AddRow(1, "token-abc", now, expiresAt)
	mock.ExpectQuery("INSERT INTO admin_sessions").
		WithArgs("token-abc", expiresAt).
		WillReturnRows(rows)

	session, err := repo.Create(context.Background(), model.CreateAdminSessionParams{
		SessionID: "token-abc",
		ExpiresAt: expiresAt,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, session.ID)
	assert.Equal(t, "token-abc", session.SessionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminSessionRepo_FindBySessionID(t *testing.T) {
	t.Run("returns the row including an expired one", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAdminSessionRepository(db)

		expired := time.Now().Add(-time.Hour)
		rows := sqlmock.NewRows(sessionColumns).AddRow(1, "token-abc", expired.Add(-24*time.Hour), expired)
		mock.ExpectQuery("SELECT \\* FROM admin_sessions").
			WithArgs("token-abc").
			WillReturnRows(rows)

		session, err := repo.FindBySessionID(context.Background(), "token-abc")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "token-abc", session.SessionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is nil without error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAdminSessionRepository(db)

		mock.ExpectQuery("SELECT \\* FROM admin_sessions").
			WithArgs("absent").
			WillReturnRows(sqlmock.NewRows(sessionColumns))

		session, err := repo.FindBySessionID(context.Background(), "absent")
		require.NoError(t, err)
		assert.Nil(t, session)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database errors propagate", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAdminSessionRepository(db)

		mock.ExpectQuery("SELECT \\* FROM admin_sessions").
			WillReturnError(errors.New("connection refused"))

		_, err := repo.FindBySessionID(context.Background(), "token-abc")
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdminSessionRepo_DeleteBySessionID(t *testing.T) {
	t.Run("deletes the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAdminSessionRepository(db)

		mock.ExpectExec("DELETE FROM admin_sessions").
			WithArgs("token-abc").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteBySessionID(context.Background(), "token-abc"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleting an absent token is not an error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAdminSessionRepository(db)

		mock.ExpectExec("DELETE FROM admin_sessions").
			WithArgs("absent").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.DeleteBySessionID(context.Background(), "absent"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
