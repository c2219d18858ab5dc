package list_appointments

import (
	"context"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
)

type AppointmentsService interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
