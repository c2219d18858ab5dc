package create_quote

import (
	"context"
	"fmt"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
	"github.com/AneFreitas/agendamentodeviagem/pkg/brformat"
)

// UseCase use case расчета стоимости поездки.
// Успешный расчет сохраняет котировку как актуальную для сессии;
// любая ошибка оставляет состояние сессии без изменений
type UseCase struct {
	distanceClient DistanceClient
	pricingEngine  PricingEngine
	quoteStore     QuoteStore
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	distanceClient DistanceClient,
	pricingEngine PricingEngine,
	quoteStore QuoteStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		distanceClient: distanceClient,
		pricingEngine:  pricingEngine,
		quoteStore:     quoteStore,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case расчета котировки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateQuote: session=%s, start=%q, destination=%q, rate=%.2f",
		req.SessionID, req.Trip.StartAddress, req.Trip.Destination, req.Trip.RatePerKM)

	if req.SessionID == "" {
		uc.logger.Warn("CreateQuote: missing session id")
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	// 1. Валидация клиента (повторяется при каждом запросе)
	if err := validateCustomer(req.Customer); err != nil {
		uc.logger.Warn("CreateQuote: customer validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализация и валидация параметров поездки
	trip := normalizeTrip(req.Trip)
	if err := validateTrip(trip); err != nil {
		uc.logger.Warn("CreateQuote: trip validation failed: %v", err)
		return nil, err
	}

	// 3. Запрашиваем расстояние у внешнего сервиса
	distanceKM, err := uc.distanceClient.Estimate(ctx, trip.StartAddress, trip.Destination)
	if err != nil {
		uc.logger.Error("CreateQuote: distance estimation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDistanceUnavailable, err)
	}

	// 4. Рассчитываем стоимость
	price, err := uc.pricingEngine.Quote(distanceKM, trip.RatePerKM)
	if err != nil {
		uc.logger.Error("CreateQuote: pricing failed: distance=%.1f, rate=%.2f: %v",
			distanceKM, trip.RatePerKM, err)
		return nil, fmt.Errorf("%w: pricing failed: %v", ErrInternal, err)
	}

	// 5. Сохраняем котировку со снимком параметров поездки
	quote := domain.Quote{
		DistanceKM: distanceKM,
		Price:      price,
		Trip:       trip,
		CreatedAt:  uc.timeProvider.Now(),
	}
	uc.quoteStore.Put(req.SessionID, quote)

	uc.logger.Info("CreateQuote: session=%s, distance=%.1f km, price=%.2f",
		req.SessionID, distanceKM, price)

	return &Response{
		DistanceKM:     distanceKM,
		Price:          price,
		FormattedPrice: brformat.Price(price),
		CreatedAt:      quote.CreatedAt,
	}, nil
}
