package create_quote

import (
	"context"
	"time"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
)

// DistanceClient интерфейс клиента сервиса расчета расстояния
type DistanceClient interface {
	Estimate(ctx context.Context, startAddress, destination string) (float64, error)
}

// PricingEngine интерфейс расчета стоимости поездки
type PricingEngine interface {
	Quote(distanceKM, ratePerKM float64) (float64, error)
}

// QuoteStore интерфейс хранилища котировок сессий
type QuoteStore interface {
	Put(sessionID string, q domain.Quote)
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
