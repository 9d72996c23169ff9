package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mywallet/internal/model"
)

func newMockedSessionRepo(t *testing.T) (SessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSessionRepository(&Database{db: db}), mock
}

func TestSessionCreate(t *testing.T) {
	repo, mock := newMockedSessionRepo(t)

	createdAt := time.Now()
	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs(int64(5), "token-abc").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))

	session := &model.Session{UserID: 5, Token: "token-abc"}
	require.NoError(t, repo.Create(context.Background(), session))
	assert.Equal(t, int64(1), session.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionGetByToken(t *testing.T) {
	repo, mock := newMockedSessionRepo(t)

	createdAt := time.Now()
	mock.ExpectQuery("SELECT id, user_id, token, created_at FROM sessions WHERE token").
		WithArgs("token-abc").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "created_at"}).
			AddRow(int64(1), int64(5), "token-abc", createdAt))

	session, err := repo.GetByToken(context.Background(), "token-abc")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, int64(5), session.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionGetByTokenNotFound(t *testing.T) {
	repo, mock := newMockedSessionRepo(t)

	mock.ExpectQuery("SELECT id, user_id, token, created_at FROM sessions WHERE token").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "created_at"}))

	session, err := repo.GetByToken(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionGetByTokenAndUser(t *testing.T) {
	repo, mock := newMockedSessionRepo(t)

	createdAt := time.Now()
	mock.ExpectQuery("SELECT id, user_id, token, created_at FROM sessions WHERE token").
		WithArgs("token-abc", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "created_at"}).
			AddRow(int64(1), int64(5), "token-abc", createdAt))

	session, err := repo.GetByTokenAndUser(context.Background(), "token-abc", 5)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionDeleteByTokenIsIdempotent(t *testing.T) {
	repo, mock := newMockedSessionRepo(t)

	mock.ExpectExec("DELETE FROM sessions WHERE token").
		WithArgs("token-abc").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Zero affected rows is still success.
	assert.NoError(t, repo.DeleteByToken(context.Background(), "token-abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
