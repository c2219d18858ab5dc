package create_quote

import (
	"time"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
	createQuote "github.com/AneFreitas/agendamentodeviagem/internal/usecase/create_quote"
)

// QuoteRequest HTTP request model: поля формы виджета
type QuoteRequest struct {
	FullName     string  `json:"fullName"`
	CPF          string  `json:"cpf"`
	Phone        string  `json:"phone"`
	StartAddress string  `json:"startAddress"`
	Destination  string  `json:"destination"`
	RatePerKM    float64 `json:"ratePerKm"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	DistanceKM     float64 `json:"distanceKm"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formattedPrice"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest(sessionID string) *createQuote.Request {
	return &createQuote.Request{
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
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		DistanceKM:     resp.DistanceKM,
		Price:          resp.Price,
		FormattedPrice: resp.FormattedPrice,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
