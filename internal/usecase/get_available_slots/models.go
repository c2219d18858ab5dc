package get_available_slots

import (
	"time"

	"github.com/AneFreitas/agendamentodeviagem/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	Date time.Time // Дата бронирования (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date     time.Time          // Дата, на которую запрашивались слоты
	Bookable bool               // Доступна ли дата для бронирования
	Slots    []types.TimeString // Слоты рабочего окна; пустой список для недоступной даты
}
