package create_booking

import (
	"errors"
	"net/http"

	"github.com/AneFreitas/agendamentodeviagem/internal/api/handlers"
	"github.com/AneFreitas/agendamentodeviagem/internal/api/middleware"
	createBooking "github.com/AneFreitas/agendamentodeviagem/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidName        = "por favor, informe seu nome completo"
	msgInvalidCPF         = "o CPF digitado é inválido, por favor verifique"
	msgInvalidPhone       = "por favor, informe um telefone válido"
	msgMissingAddresses   = "por favor, informe os endereços de partida e destino"
	msgInvalidRate        = "por favor, insira um valor por KM válido"
	msgNoQuote            = "por favor, consulte o valor antes de agendar"
	msgQuoteStale         = "os dados da viagem mudaram, consulte o valor novamente"
	msgDateRequired       = "por favor, selecione uma data para a viagem"
	msgWeekendDate        = "agendamentos não disponíveis aos sábados e domingos"
	msgPastDate           = "a data selecionada já passou"
	msgInvalidSlot        = "horário fora da janela de atendimento"
	msgPersistence        = "erro ao salvar o agendamento, tente novamente"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sessionID := middleware.SessionID(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidName):
			h.logger.Warn("POST /bookings - Invalid name: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, createBooking.ErrInvalidCPF):
			h.logger.Warn("POST /bookings - Invalid CPF: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidCPF)

		case errors.Is(err, createBooking.ErrInvalidPhone):
			h.logger.Warn("POST /bookings - Invalid phone: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createBooking.ErrMissingAddresses):
			h.logger.Warn("POST /bookings - Missing addresses: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgMissingAddresses)

		case errors.Is(err, createBooking.ErrInvalidRate):
			h.logger.Warn("POST /bookings - Invalid rate: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidRate)

		case errors.Is(err, createBooking.ErrNoQuote):
			h.logger.Warn("POST /bookings - No quote: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgNoQuote)

		case errors.Is(err, createBooking.ErrQuoteStale):
			h.logger.Warn("POST /bookings - Stale quote: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgQuoteStale)

		case errors.Is(err, createBooking.ErrDateRequired):
			h.logger.Warn("POST /bookings - Missing date: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgDateRequired)

		case errors.Is(err, createBooking.ErrWeekendDate):
			h.logger.Warn("POST /bookings - Weekend date: session_id=%s, date=%s", sessionID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgWeekendDate)

		case errors.Is(err, createBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Past date: session_id=%s, date=%s", sessionID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: session_id=%s, slot=%s", sessionID, req.Slot)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrPersistence):
			h.logger.Error("POST /bookings - Persistence failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPersistence)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: appointment_id=%d, session_id=%s",
		result.AppointmentID, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
