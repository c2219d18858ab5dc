package pricing

import "github.com/AneFreitas/agendamentodeviagem/internal/domain"

// Engine рассчитывает стоимость поездки
type Engine struct {
	fixedFee float64
}

// NewEngine создает Engine с фиксированной доплатой domain.FixedFee
func NewEngine() *Engine {
	return &Engine{fixedFee: domain.FixedFee}
}

// Quote возвращает стоимость поездки: distanceKM * ratePerKM + fixedFee
// Валидация пользовательского ввода выполняется выше по стеку;
// здесь проверяются только контрактные границы
func (e *Engine) Quote(distanceKM, ratePerKM float64) (float64, error) {
	if distanceKM < 0 {
		return 0, ErrNegativeDistance
	}
	if ratePerKM <= 0 {
		return 0, ErrInvalidRate
	}
	return distanceKM*ratePerKM + e.fixedFee, nil
}
