package appointment

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Append(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO appointments (session_id,data) VALUES ($1,$2) RETURNING id")).
		WithArgs("session-1", `{"sessionId":"session-1"}`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.Append(context.Background(), "session-1", `{"sessionId":"session-1"}`)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Append_MissingSession(t *testing.T) {
	repo, mock := newMock(t)

	_, err := repo.Append(context.Background(), "", "{}")
	assert.ErrorIs(t, err, ErrMissingSession)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Append_ExecError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO appointments (session_id,data) VALUES ($1,$2) RETURNING id")).
		WithArgs("session-1", "{}").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Append(context.Background(), "session-1", "{}")
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, session_id, data, created_at FROM appointments WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "data", "created_at"}).
			AddRow(int64(42), "session-1", `{"sessionId":"session-1"}`, testCreatedAt))

	rec, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), rec.ID)
	assert.Equal(t, "session-1", rec.SessionID)
	assert.Equal(t, `{"sessionId":"session-1"}`, rec.Data)
	assert.Equal(t, testCreatedAt, rec.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, session_id, data, created_at FROM appointments WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "data", "created_at"}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListBySession(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, session_id, data, created_at FROM appointments WHERE session_id = $1 ORDER BY created_at DESC")).
		WithArgs("session-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "data", "created_at"}).
			AddRow(int64(43), "session-1", "{}", testCreatedAt.Add(time.Hour)).
			AddRow(int64(42), "session-1", "{}", testCreatedAt))

	records, err := repo.ListBySession(context.Background(), "session-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(43), records[0].ID)
	assert.Equal(t, int64(42), records[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListBySession_Empty(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, session_id, data, created_at FROM appointments WHERE session_id = $1 ORDER BY created_at DESC")).
		WithArgs("session-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "data", "created_at"}))

	records, err := repo.ListBySession(context.Background(), "session-2")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_WithLimit(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, session_id, data, created_at FROM appointments ORDER BY created_at DESC LIMIT 5")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "data", "created_at"}).
			AddRow(int64(42), "session-1", "{}", testCreatedAt))

	records, err := repo.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_NoLimit(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, session_id, data, created_at FROM appointments ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "data", "created_at"}))

	_, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
