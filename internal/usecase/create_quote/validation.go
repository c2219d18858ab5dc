package create_quote

import (
	"strings"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
	"github.com/AneFreitas/agendamentodeviagem/pkg/cpf"
)

// validateCustomer проверяет данные клиента перед расчетом котировки
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

// normalizeTrip обрезает пробелы в адресах.
// Нормализованный снимок сохраняется в котировке и используется
// при проверке актуальности котировки на этапе бронирования
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
	if len(t.StartAddress) > domain.MaxAddressLength || len(t.Destination) > domain.MaxAddressLength {
		return ErrMissingAddresses
	}
	if t.RatePerKM <= 0 {
		return ErrInvalidRate
	}
	return nil
}
