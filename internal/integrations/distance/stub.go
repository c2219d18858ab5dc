package distance

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
)

// Stub заглушка сервиса маршрутизации: возвращает равномерно
// распределенное целое расстояние в [MinDistanceKM, MaxDistanceKM]
// после фиксированной задержки. Используется, когда URL реального
// сервиса не настроен
type Stub struct {
	delay time.Duration
	log   Logger
}

// NewStub создает заглушку с указанной задержкой ответа
func NewStub(delay time.Duration, log Logger) *Stub {
	return &Stub{delay: delay, log: log}
}

// Estimate имитирует запрос к сервису маршрутизации
func (s *Stub) Estimate(ctx context.Context, startAddress, destination string) (float64, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	km := float64(domain.MinDistanceKM + rand.IntN(domain.MaxDistanceKM-domain.MinDistanceKM+1))
	s.log.Info("distance: stub estimated %.1f km for %q -> %q", km, startAddress, destination)
	return km, nil
}
