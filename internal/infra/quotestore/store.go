package quotestore

import (
	"sync"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
)

// Store хранит последнюю котировку каждой сессии.
// Котировка действительна для бронирования только пока параметры поездки
// в запросе совпадают со снимком, для которого она была рассчитана;
// новая котировка сессии замещает предыдущую
type Store struct {
	mu     sync.RWMutex
	quotes map[string]domain.Quote
}

// New создает пустое хранилище котировок
func New() *Store {
	return &Store{quotes: make(map[string]domain.Quote)}
}

// Put сохраняет котировку сессии, замещая предыдущую
func (s *Store) Put(sessionID string, q domain.Quote) {
	s.mu.Lock()
	s.quotes[sessionID] = q
	s.mu.Unlock()
}

// Get возвращает котировку сессии, если она есть
func (s *Store) Get(sessionID string) (domain.Quote, bool) {
	s.mu.RLock()
	q, ok := s.quotes[sessionID]
	s.mu.RUnlock()
	return q, ok
}

// Invalidate удаляет котировку сессии.
// Вызывается после успешного бронирования: следующий цикл начинается заново
func (s *Store) Invalidate(sessionID string) {
	s.mu.Lock()
	delete(s.quotes, sessionID)
	s.mu.Unlock()
}
