package get_session_appointments

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AneFreitas/agendamentodeviagem/internal/api/handlers"
	"github.com/AneFreitas/agendamentodeviagem/internal/api/middleware"
)

const (
	msgMissingSessionID = "identificador de sessão ausente na URL"
	msgForbidden        = "acesso negado"
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

// Handle GET /api/v1/sessions/{sessionId}/appointments
// Сессия может просматривать только собственные бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	if sessionID == "" {
		h.logger.Warn("GET /sessions/{sessionId}/appointments - Missing session id")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	if sessionID != middleware.SessionID(r.Context()) {
		h.logger.Warn("GET /sessions/{sessionId}/appointments - Access denied: session_id=%s", sessionID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.ListBySession(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /sessions/{sessionId}/appointments - Failed to list: session_id=%s, error=%v",
			sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sessions/{sessionId}/appointments - Retrieved: session_id=%s, count=%d",
		sessionID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
