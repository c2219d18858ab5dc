package create_booking

import (
	"strings"
	"time"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
	availableSlots "github.com/AneFreitas/agendamentodeviagem/internal/usecase/get_available_slots"
	"github.com/AneFreitas/agendamentodeviagem/pkg/cpf"
	"github.com/AneFreitas/agendamentodeviagem/pkg/types"
)

// validateCustomer проверяет данные клиента перед бронированием
func validateCustomer(c domain.Customer) error {
	name := strings.TrimSpace(c.FullName)
	if name == "" || len(name) > domain.MaxNameLength {
		return ErrInvalidName
	}

	if !cpf.IsValid(c.CPF) {
		return ErrInvalidCPF
	}

	if len(c.Phone) < domain.MinPhoneMaskedLength {
		return ErrInvalidPhone
	}

	return nil
}

// normalizeTrip обрезает пробелы в адресах тем же способом, что и при
// расчете котировки: сравнение снимков требует одинаковой нормализации
func normalizeTrip(t domain.TripRequest) domain.TripRequest {
	t.StartAddress = strings.TrimSpace(t.StartAddress)
	t.Destination = strings.TrimSpace(t.Destination)
	return t
}

// validateTrip проверяет параметры поездки
func validateTrip(t domain.TripRequest) error {
	if t.StartAddress == "" || t.Destination == "" {
		return ErrMissingAddresses
	}
	if t.RatePerKM <= 0 {
		return ErrInvalidRate
	}
	return nil
}

// validateDate проверяет дату поездки: обязательна, не выходной, не в прошлом
func validateDate(date, now time.Time) error {
	if date.IsZero() {
		return ErrDateRequired
	}

	wd := date.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return ErrWeekendDate
	}

	// Дата из запроса разобрана в UTC, текущее время - в поясе сервера.
	// Сравниваем календарные даты, а не моменты времени
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dateOnly.Before(nowOnly) {
		return ErrPastDate
	}

	return nil
}

// validateSlot проверяет, что слот принадлежит рабочему окну
func validateSlot(slot types.TimeString) error {
	if slot.IsZero() {
		return ErrInvalidSlot
	}
	if err := slot.Validate(); err != nil {
		return ErrInvalidSlot
	}
	if !availableSlots.IsValidSlot(slot) {
		return ErrInvalidSlot
	}
	return nil
}
