package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AneFreitas/agendamentodeviagem/internal/api/handlers"
)

const (
	// SessionHeader заголовок с идентификатором сессии
	SessionHeader = "X-Session-ID"

	msgMissingSession = "sessão ausente: crie uma sessão antes de continuar"
	msgInvalidSession = "sessão inválida ou expirada"
)

// SessionValidator интерфейс проверки сессий
type SessionValidator interface {
	Validate(token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type contextKey string

const sessionIDKey contextKey = "sessionID"

// Auth проверяет заголовок X-Session-ID и кладет идентификатор сессии
// в контекст запроса
func Auth(sessions SessionValidator, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionHeader)
			if token == "" {
				log.Warn("%s %s - Missing session header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingSession)
				return
			}

			if err := sessions.Validate(token); err != nil {
				log.Warn("%s %s - Invalid session: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidSession)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID извлекает идентификатор сессии из контекста запроса.
// Возвращает пустую строку, если Auth middleware не применялся
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}
