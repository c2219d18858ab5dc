package create_booking

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
	"github.com/AneFreitas/agendamentodeviagem/internal/service/whatsapp"
	"github.com/AneFreitas/agendamentodeviagem/pkg/brformat"
)

// UseCase use case подтверждения бронирования.
// Бронирование принимается только при актуальной котировке: котировка
// должна быть рассчитана для в точности тех же параметров поездки.
// Сохранение выполняется с одной попытки, без автоматического повтора
type UseCase struct {
	appointmentRepo AppointmentRepository
	quoteStore      QuoteStore
	linkBuilder     LinkBuilder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	quoteStore QuoteStore,
	linkBuilder LinkBuilder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		quoteStore:      quoteStore,
		linkBuilder:     linkBuilder,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: session=%s, date=%s, slot=%s",
		req.SessionID, req.Date.Format(domain.DateFormat), req.Slot)

	if req.SessionID == "" {
		uc.logger.Warn("CreateBooking: missing session id")
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	// 1. Повторная валидация клиента
	if err := validateCustomer(req.Customer); err != nil {
		uc.logger.Warn("CreateBooking: customer validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализация и валидация параметров поездки
	trip := normalizeTrip(req.Trip)
	if err := validateTrip(trip); err != nil {
		uc.logger.Warn("CreateBooking: trip validation failed: %v", err)
		return nil, err
	}

	// 3. Котировка должна существовать и соответствовать текущим параметрам
	quote, ok := uc.quoteStore.Get(req.SessionID)
	if !ok {
		uc.logger.Warn("CreateBooking: no quote for session=%s", req.SessionID)
		return nil, ErrNoQuote
	}
	if !quote.MatchesTrip(trip) {
		uc.logger.Warn("CreateBooking: stale quote for session=%s", req.SessionID)
		return nil, ErrQuoteStale
	}

	// 4. Валидация даты и слота
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateSlot(req.Slot); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: slot=%s: %v", req.Slot, err)
		return nil, err
	}

	// 5. Собираем неизменяемый снимок бронирования
	appt := domain.Appointment{
		SessionID: req.SessionID,
		Customer: domain.Customer{
			FullName: req.Customer.FullName,
			CPF:      brformat.CPF(req.Customer.CPF),
			Phone:    brformat.Phone(req.Customer.Phone),
		},
		Trip:      trip,
		Date:      req.Date,
		Slot:      req.Slot,
		Quote:     quote,
		CreatedAt: now,
	}

	payload, err := json.Marshal(appt)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to serialize appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to serialize appointment: %v", ErrInternal, err)
	}

	// 6. Сохраняем, одна попытка; при сбое котировка остается актуальной
	// и пользователь может повторить бронирование вручную
	id, err := uc.appointmentRepo.Append(ctx, req.SessionID, string(payload))
	if err != nil {
		uc.logger.Error("CreateBooking: persistence failed: session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// 7. Бронирование подтверждено: цикл завершен, котировка расходуется
	uc.quoteStore.Invalidate(req.SessionID)

	formattedDate := brformat.Date(req.Date)
	formattedPrice := brformat.Price(quote.Price)

	deepLink := uc.linkBuilder.BuildLink(whatsapp.Message{
		AppointmentID:  id,
		CustomerName:   appt.Customer.FullName,
		CustomerPhone:  appt.Customer.Phone,
		StartAddress:   trip.StartAddress,
		Destination:    trip.Destination,
		FormattedDate:  formattedDate,
		Slot:           req.Slot.String(),
		FormattedPrice: formattedPrice,
	})

	uc.logger.Info("CreateBooking: appointment created id=%d, session=%s", id, req.SessionID)

	return &Response{
		AppointmentID:  id,
		Date:           formattedDate,
		Slot:           req.Slot.String(),
		DistanceKM:     quote.DistanceKM,
		Price:          quote.Price,
		FormattedPrice: formattedPrice,
		DeepLink:       deepLink,
	}, nil
}
