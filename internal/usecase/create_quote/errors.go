package create_quote

import "errors"

var (
	// ErrInvalidName возвращается при пустом имени клиента
	ErrInvalidName = errors.New("create_quote: full name is required")

	// ErrInvalidCPF возвращается при CPF с некорректной контрольной суммой
	ErrInvalidCPF = errors.New("create_quote: invalid cpf")

	// ErrInvalidPhone возвращается при телефоне короче канонической формы
	ErrInvalidPhone = errors.New("create_quote: invalid phone")

	// ErrMissingAddresses возвращается при пустом адресе отправления или назначения
	ErrMissingAddresses = errors.New("create_quote: start address and destination are required")

	// ErrInvalidRate возвращается при нулевой или отрицательной ставке за километр
	ErrInvalidRate = errors.New("create_quote: rate per km must be positive")

	// ErrDistanceUnavailable возвращается, когда сервис расстояния не ответил;
	// котировка не сохраняется, состояние сессии не меняется
	ErrDistanceUnavailable = errors.New("create_quote: distance service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_quote: internal error")
)
