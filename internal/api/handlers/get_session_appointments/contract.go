package get_session_appointments

import (
	"context"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
)

type AppointmentsService interface {
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
