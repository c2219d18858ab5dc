package create_booking

import (
	"time"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
	"github.com/AneFreitas/agendamentodeviagem/pkg/types"
)

// Request модель запроса на бронирование.
// Параметры поездки передаются повторно: они должны в точности совпадать
// со снимком актуальной котировки сессии
type Request struct {
	SessionID string             // Идентификатор сессии
	Customer  domain.Customer    // Данные клиента
	Trip      domain.TripRequest // Параметры поездки
	Date      time.Time          // Дата поездки (без времени)
	Slot      types.TimeString   // Выбранный слот, например "09:30"
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	AppointmentID  int64   // Идентификатор, выданный персистентным хранилищем
	Date           string  // Дата в формате DD/MM/YYYY
	Slot           string  // Слот HH:MM
	DistanceKM     float64 // Расстояние из котировки
	Price          float64 // Стоимость из котировки
	FormattedPrice string  // Стоимость в формате "R$ D,DD"
	DeepLink       string  // WhatsApp ссылка с предзаполненным сообщением
}
