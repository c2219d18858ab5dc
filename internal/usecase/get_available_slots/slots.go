package get_available_slots

import (
	"time"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
	"github.com/AneFreitas/agendamentodeviagem/pkg/types"
)

// EnumerateSlots генерирует слоты рабочего окна: от FirstSlot до LastSlot
// включительно с фиксированным шагом SlotStepMinutes.
// Результат детерминирован и пересчитывается при каждом вызове
func EnumerateSlots() ([]types.TimeString, error) {
	first, err := types.NewTimeStringFromString(domain.FirstSlot)
	if err != nil {
		return nil, err
	}
	last, err := types.NewTimeStringFromString(domain.LastSlot)
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0, domain.SlotsPerDay)
	current := first

	for !current.IsAfter(last) {
		slots = append(slots, current)
		current, err = current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// IsBookableDate возвращает true для будних дат не раньше сегодняшней.
// Суббота, воскресенье и прошедшие даты недоступны
func IsBookableDate(date, now time.Time) bool {
	if isDateInPast(date, now) {
		return false
	}
	return !isWeekend(date)
}

// IsValidSlot проверяет, что слот входит в рабочее окно
func IsValidSlot(slot types.TimeString) bool {
	slots, err := EnumerateSlots()
	if err != nil {
		return false
	}
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// isWeekend проверяет, что дата приходится на субботу или воскресенье
func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня).
// Дата из запроса разобрана в UTC, текущее время - в поясе сервера,
// поэтому сравниваются календарные даты, а не моменты времени
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
