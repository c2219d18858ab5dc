package create_booking

import (
	"time"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
	createBooking "github.com/AneFreitas/agendamentodeviagem/internal/usecase/create_booking"
	"github.com/AneFreitas/agendamentodeviagem/pkg/types"
)

// BookingRequest HTTP request model.
// Параметры поездки передаются повторно и должны совпадать
// с теми, для которых была рассчитана котировка
type BookingRequest struct {
	FullName     string  `json:"fullName"`
	CPF          string  `json:"cpf"`
	Phone        string  `json:"phone"`
	StartAddress string  `json:"startAddress"`
	Destination  string  `json:"destination"`
	RatePerKM    float64 `json:"ratePerKm"`
	Date         string  `json:"date"` // "2025-10-15"
	Slot         string  `json:"slot"` // "09:30"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	AppointmentID  int64   `json:"appointmentId"`
	Date           string  `json:"date"` // DD/MM/YYYY
	Slot           string  `json:"slot"`
	DistanceKM     float64 `json:"distanceKm"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formattedPrice"`
	DeepLink       string  `json:"deepLink"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Пустая дата транслируется в нулевой time.Time: отсутствие даты
// отклоняет use case, а не парсер
func (r *BookingRequest) ToUseCaseRequest(sessionID string) (*createBooking.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &createBooking.Request{
		SessionID: sessionID,
		Customer: domain.Customer{
			FullName: r.FullName,
			CPF:      r.CPF,
			Phone:    r.Phone,
		},
		Trip: domain.TripRequest{
			StartAddress: r.StartAddress,
			Destination:  r.Destination,
			RatePerKM:    r.RatePerKM,
		},
		Date: date,
		Slot: types.TimeString(r.Slot),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		AppointmentID:  resp.AppointmentID,
		Date:           resp.Date,
		Slot:           resp.Slot,
		DistanceKM:     resp.DistanceKM,
		Price:          resp.Price,
		FormattedPrice: resp.FormattedPrice,
		DeepLink:       resp.DeepLink,
	}
}
