package appointments

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
	"github.com/AneFreitas/agendamentodeviagem/internal/infra/storage/appointment"
)

// Service читающий сервис бронирований: восстанавливает снимки
// из непрозрачного хранимого поля и проверяет принадлежность сессии
type Service struct {
	repo   AppointmentRepository
	logger Logger
}

// NewService создает сервис бронирований
func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID возвращает бронирование по идентификатору.
// Доступ разрешен только сессии-владельцу
func (s *Service) GetByID(ctx context.Context, id int64, sessionID string) (*domain.Appointment, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == appointment.ErrAppointmentNotFound {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error: id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if rec.SessionID != sessionID {
		s.logger.Warn("GetByID: access denied: id=%d, session=%s", id, sessionID)
		return nil, ErrAccessDenied
	}

	return s.decode(rec)
}

// ListBySession возвращает бронирования одной сессии, новые первыми
func (s *Service) ListBySession(ctx context.Context, sessionID string) ([]*domain.Appointment, error) {
	records, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		s.logger.Error("ListBySession: repository error: session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return s.decodeAll(records)
}

// ListRecent возвращает последние бронирования по всем сессиям
// (сводка для водителя)
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*domain.Appointment, error) {
	records, err := s.repo.List(ctx, limit)
	if err != nil {
		s.logger.Error("ListRecent: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return s.decodeAll(records)
}

func (s *Service) decode(rec *appointment.Record) (*domain.Appointment, error) {
	var appt domain.Appointment
	if err := json.Unmarshal([]byte(rec.Data), &appt); err != nil {
		s.logger.Error("decode: corrupted payload: id=%d: %v", rec.ID, err)
		return nil, fmt.Errorf("%w: id=%d: %v", ErrCorruptedPayload, rec.ID, err)
	}

	// Идентификатор выдается хранилищем и не входит в снимок
	appt.ID = rec.ID
	appt.CreatedAt = rec.CreatedAt
	return &appt, nil
}

func (s *Service) decodeAll(records []*appointment.Record) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0, len(records))
	for _, rec := range records {
		appt, err := s.decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, appt)
	}
	return out, nil
}
