package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session анонимная сессия пользователя виджета.
// Создается один раз при старте взаимодействия, далее только читается
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service выдает и проверяет анонимные сессии.
// Реестр хранится в памяти: сессия живет столько же, сколько процесс,
// что повторяет page-lifetime семантику исходной анонимной аутентификации
type Service struct {
	mu       sync.RWMutex
	sessions map[string]Session
	logger   Logger
}

// NewService создает сервис сессий
func NewService(logger Logger) *Service {
	return &Service{
		sessions: make(map[string]Session),
		logger:   logger,
	}
}

// Create выдает новую анонимную сессию
func (s *Service) Create() Session {
	sess := Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Info("session: created id=%s", sess.ID)
	return sess
}

// Validate проверяет, что токен принадлежит живой сессии
func (s *Service) Validate(token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.RLock()
	_, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return ErrSessionNotFound
	}
	return nil
}
