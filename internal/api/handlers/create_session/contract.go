package create_session

import "github.com/AneFreitas/agendamentodeviagem/internal/service/session"

type SessionService interface {
	Create() session.Session
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
