package create_booking

import "errors"

var (
	// ErrInvalidName возвращается при пустом имени клиента
	ErrInvalidName = errors.New("create_booking: full name is required")

	// ErrInvalidCPF возвращается при CPF с некорректной контрольной суммой
	ErrInvalidCPF = errors.New("create_booking: invalid cpf")

	// ErrInvalidPhone возвращается при телефоне короче канонической формы
	ErrInvalidPhone = errors.New("create_booking: invalid phone")

	// ErrMissingAddresses возвращается при пустом адресе отправления или назначения
	ErrMissingAddresses = errors.New("create_booking: start address and destination are required")

	// ErrInvalidRate возвращается при нулевой или отрицательной ставке за километр
	ErrInvalidRate = errors.New("create_booking: rate per km must be positive")

	// ErrNoQuote возвращается при попытке бронирования без рассчитанной котировки
	ErrNoQuote = errors.New("create_booking: quote must be requested first")

	// ErrQuoteStale возвращается, когда параметры поездки изменились после
	// расчета котировки; требуется повторный расчет
	ErrQuoteStale = errors.New("create_booking: quote does not match current trip inputs")

	// ErrDateRequired возвращается при отсутствии даты поездки
	ErrDateRequired = errors.New("create_booking: date is required")

	// ErrWeekendDate возвращается для субботы и воскресенья
	ErrWeekendDate = errors.New("create_booking: bookings are not available on weekends")

	// ErrPastDate возвращается для прошедшей даты
	ErrPastDate = errors.New("create_booking: date is in the past")

	// ErrInvalidSlot возвращается для слота вне рабочего окна
	ErrInvalidSlot = errors.New("create_booking: slot is outside the booking window")

	// ErrPersistence возвращается при сбое сохранения; котировка остается
	// актуальной, пользователь может повторить бронирование вручную
	ErrPersistence = errors.New("create_booking: failed to persist appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
