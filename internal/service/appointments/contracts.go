package appointments

import (
	"context"

	"github.com/AneFreitas/agendamentodeviagem/internal/infra/storage/appointment"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*appointment.Record, error)
	ListBySession(ctx context.Context, sessionID string) ([]*appointment.Record, error)
	List(ctx context.Context, limit int) ([]*appointment.Record, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
