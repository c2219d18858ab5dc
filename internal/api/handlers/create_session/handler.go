package create_session

import (
	"net/http"
	"time"

	"github.com/AneFreitas/agendamentodeviagem/internal/api/handlers"
)

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	CreatedAt string `json:"createdAt"`
}

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
// Анонимная инициализация сессии: тело запроса не требуется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := h.service.Create()

	h.logger.Info("POST /sessions - Session created: session_id=%s", sess.ID)
	handlers.RespondJSON(w, http.StatusCreated, SessionResponse{
		SessionID: sess.ID,
		CreatedAt: sess.CreatedAt.Format(time.RFC3339),
	})
}
