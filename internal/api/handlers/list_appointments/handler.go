package list_appointments

import (
	"net/http"
	"strconv"

	"github.com/AneFreitas/agendamentodeviagem/internal/api/handlers"
)

const (
	msgInvalidLimit = "parâmetro limit inválido"

	defaultLimit = 50
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: limit (optional, default 50)
// Сводка последних бронирований для водителя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /appointments - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
