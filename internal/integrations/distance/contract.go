package distance

import "context"

// Client контракт сервиса расчета расстояния между адресами.
// Реализация обязана вернуть результат или ошибку за ограниченное время -
// зависание не допускается
type Client interface {
	// Estimate возвращает расстояние в километрах между двумя адресами
	Estimate(ctx context.Context, startAddress, destination string) (float64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
