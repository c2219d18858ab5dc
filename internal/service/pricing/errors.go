package pricing

import "errors"

var (
	// ErrNegativeDistance возвращается при отрицательной дистанции
	ErrNegativeDistance = errors.New("pricing: distance must not be negative")

	// ErrInvalidRate возвращается при нулевой или отрицательной ставке за километр
	ErrInvalidRate = errors.New("pricing: rate per km must be positive")
)
