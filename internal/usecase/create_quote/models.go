package create_quote

import (
	"time"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
)

// Request модель запроса на расчет стоимости поездки
type Request struct {
	SessionID string             // Идентификатор сессии
	Customer  domain.Customer    // Данные клиента (повторно валидируются при каждом запросе)
	Trip      domain.TripRequest // Параметры поездки
}

// Response модель ответа с рассчитанной котировкой
type Response struct {
	DistanceKM     float64   // Расстояние в километрах
	Price          float64   // Стоимость поездки
	FormattedPrice string    // Стоимость в формате "R$ D,DD"
	CreatedAt      time.Time // Время расчета котировки
}
