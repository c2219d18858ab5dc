package create_quote

import (
	"errors"
	"net/http"

	"github.com/AneFreitas/agendamentodeviagem/internal/api/handlers"
	"github.com/AneFreitas/agendamentodeviagem/internal/api/middleware"
	createQuote "github.com/AneFreitas/agendamentodeviagem/internal/usecase/create_quote"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidName         = "por favor, informe seu nome completo"
	msgInvalidCPF          = "o CPF digitado é inválido, por favor verifique"
	msgInvalidPhone        = "por favor, informe um telefone válido"
	msgMissingAddresses    = "por favor, informe os endereços de partida e destino"
	msgInvalidRate         = "por favor, insira um valor por KM válido"
	msgDistanceUnavailable = "erro ao calcular a viagem, tente novamente"
)

type Handler struct {
	useCase CreateQuoteUseCase
	logger  Logger
}

func NewHandler(useCase CreateQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sessionID := middleware.SessionID(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, createQuote.ErrInvalidName):
			h.logger.Warn("POST /quotes - Invalid name: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, createQuote.ErrInvalidCPF):
			h.logger.Warn("POST /quotes - Invalid CPF: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidCPF)

		case errors.Is(err, createQuote.ErrInvalidPhone):
			h.logger.Warn("POST /quotes - Invalid phone: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createQuote.ErrMissingAddresses):
			h.logger.Warn("POST /quotes - Missing addresses: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgMissingAddresses)

		case errors.Is(err, createQuote.ErrInvalidRate):
			h.logger.Warn("POST /quotes - Invalid rate: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidRate)

		case errors.Is(err, createQuote.ErrDistanceUnavailable):
			h.logger.Error("POST /quotes - Distance service unavailable: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgDistanceUnavailable)

		case errors.Is(err, createQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /quotes - Failed to create quote: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote created: session_id=%s, distance=%.1f, price=%.2f",
		sessionID, result.DistanceKM, result.Price)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
