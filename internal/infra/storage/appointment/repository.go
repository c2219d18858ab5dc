package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/AneFreitas/agendamentodeviagem/pkg/psqlbuilder"
)

// Record запись бронирования в БД.
// Содержимое бронирования хранится одним непрозрачным JSON полем:
// сервер не делает запросов по отдельным полям агендамента
type Record struct {
	ID        int64
	SessionID string
	Data      string
	CreatedAt time.Time
}

// Repository append-only репозиторий бронирований.
// Записи никогда не изменяются и не удаляются
type Repository struct {
	db DBExecutor
}

// NewRepository создает репозиторий бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись бронирования и возвращает выданный БД идентификатор.
// Единственная операция записи в этом репозитории
func (r *Repository) Append(ctx context.Context, sessionID string, payload string) (int64, error) {
	if sessionID == "" {
		return 0, ErrMissingSession
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns("session_id", "data").
		Values(sessionID, payload).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

// GetByID получает запись бронирования по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*Record, error) {
	query, args, err := psqlbuilder.Select("id", "session_id", "data", "created_at").
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var rec Record
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID,
		&rec.SessionID,
		&rec.Data,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	rec.CreatedAt = createdAt.Time
	return &rec, nil
}

// ListBySession получает записи бронирований одной сессии,
// новые записи первыми
func (r *Repository) ListBySession(ctx context.Context, sessionID string) ([]*Record, error) {
	query, args, err := psqlbuilder.Select("id", "session_id", "data", "created_at").
		From("appointments").
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySession - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySession - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

// List получает последние записи бронирований по всем сессиям
// (дневная сводка для водителя); limit <= 0 означает без ограничения
func (r *Repository) List(ctx context.Context, limit int) ([]*Record, error) {
	selectBuilder := psqlbuilder.Select("id", "session_id", "data", "created_at").
		From("appointments").
		OrderBy("created_at DESC")

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

// scanRecords сканирует результаты запроса в слайс записей
func (r *Repository) scanRecords(rows *sql.Rows) ([]*Record, error) {
	records := make([]*Record, 0)

	for rows.Next() {
		var rec Record
		var createdAt sql.NullTime

		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Data, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scanRecords - scan row: %v", ErrScanRow, err)
		}

		rec.CreatedAt = createdAt.Time
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRecords - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
