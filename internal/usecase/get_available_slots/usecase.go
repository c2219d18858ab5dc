package get_available_slots

import (
	"context"
	"fmt"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
	"github.com/AneFreitas/agendamentodeviagem/pkg/types"
)

// UseCase use case для получения слотов рабочего окна на дату
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов.
// Для выходных и прошедших дат возвращает Bookable=false с пустым списком
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	if !IsBookableDate(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is not bookable", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:     req.Date,
			Bookable: false,
			Slots:    []types.TimeString{},
		}, nil
	}

	slots, err := EnumerateSlots()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to enumerate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to enumerate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for date=%s", len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:     req.Date,
		Bookable: true,
		Slots:    slots,
	}, nil
}
