package distance

import "errors"

var (
	// ErrUnavailable возвращается, когда сервис маршрутизации недоступен
	// или вернул ошибку; квота расстояния не получена
	ErrUnavailable = errors.New("distance client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("distance client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("distance client: internal error")
)
