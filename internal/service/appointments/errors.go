package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда бронирование не найдено
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается при обращении к бронированию чужой сессии
	ErrAccessDenied = errors.New("access denied")

	// ErrCorruptedPayload возвращается, когда сохраненный снимок не разбирается
	ErrCorruptedPayload = errors.New("corrupted appointment payload")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments service: internal error")
)
