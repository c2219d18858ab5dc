package create_booking

import (
	"context"
	"time"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
	"github.com/AneFreitas/agendamentodeviagem/internal/service/whatsapp"
)

// AppointmentRepository интерфейс append-only репозитория бронирований
type AppointmentRepository interface {
	Append(ctx context.Context, sessionID string, payload string) (int64, error)
}

// QuoteStore интерфейс хранилища котировок сессий
type QuoteStore interface {
	Get(sessionID string) (domain.Quote, bool)
	Invalidate(sessionID string)
}

// LinkBuilder интерфейс построителя deep-link подтверждения
type LinkBuilder interface {
	BuildLink(msg whatsapp.Message) string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
