package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
	"github.com/AneFreitas/agendamentodeviagem/internal/infra/quotestore"
	"github.com/AneFreitas/agendamentodeviagem/internal/service/whatsapp"
	"github.com/AneFreitas/agendamentodeviagem/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type stubRepository struct {
	nextID   int64
	err      error
	appended []string // сохраненные payload'ы
	sessions []string
}

func (r *stubRepository) Append(ctx context.Context, sessionID string, payload string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.appended = append(r.appended, payload)
	r.sessions = append(r.sessions, sessionID)
	return r.nextID, nil
}

// 2026-09-01 - вторник
var testNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

func validTrip() domain.TripRequest {
	return domain.TripRequest{
		StartAddress: "Rua das Flores, 100",
		Destination:  "Av. Paulista, 1000",
		RatePerKM:    2.75,
	}
}

func validRequest() *Request {
	return &Request{
		SessionID: "session-1",
		Customer: domain.Customer{
			FullName: "Maria Silva",
			CPF:      "529.982.247-25",
			Phone:    "(11) 91234-5678",
		},
		Trip: validTrip(),
		Date: time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC), // четверг
		Slot: "09:30",
	}
}

func storeWithQuote() *quotestore.Store {
	store := quotestore.New()
	store.Put("session-1", domain.Quote{
		DistanceKM: 12,
		Price:      43.00,
		Trip:       validTrip(),
		CreatedAt:  testNow,
	})
	return store
}

func newTestUseCase(repo AppointmentRepository, store QuoteStore) *UseCase {
	uc := NewUseCase(repo, store, whatsapp.NewBuilder("5511968362035"), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &stubRepository{nextID: 42}
	store := storeWithQuote()
	uc := newTestUseCase(repo, store)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.AppointmentID)
	assert.Equal(t, "03/09/2026", resp.Date)
	assert.Equal(t, "09:30", resp.Slot)
	assert.InDelta(t, 12, resp.DistanceKM, 0.001)
	assert.InDelta(t, 43.00, resp.Price, 0.001)
	assert.Equal(t, "R$ 43,00", resp.FormattedPrice)
	assert.True(t, strings.HasPrefix(resp.DeepLink, "https://wa.me/5511968362035?text="))

	// Котировка расходуется после подтверждения
	_, ok := store.Get("session-1")
	assert.False(t, ok)
}

func TestExecute_PersistedPayload(t *testing.T) {
	repo := &stubRepository{nextID: 42}
	uc := newTestUseCase(repo, storeWithQuote())

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, repo.appended, 1)
	assert.Equal(t, []string{"session-1"}, repo.sessions)

	var appt domain.Appointment
	require.NoError(t, json.Unmarshal([]byte(repo.appended[0]), &appt))

	// Снимок содержит маскированные контакты и котировку целиком
	assert.Equal(t, "Maria Silva", appt.Customer.FullName)
	assert.Equal(t, "529.982.247-25", appt.Customer.CPF)
	assert.Equal(t, "(11) 91234-5678", appt.Customer.Phone)
	assert.Equal(t, "session-1", appt.SessionID)
	assert.InDelta(t, 43.00, appt.Quote.Price, 0.001)
	assert.Equal(t, validTrip(), appt.Quote.Trip)

	// Идентификатор выдается хранилищем и в снимок не входит
	assert.Zero(t, appt.ID)
	assert.NotContains(t, repo.appended[0], `"id"`)
}

func TestExecute_NoQuote(t *testing.T) {
	repo := &stubRepository{nextID: 42}
	uc := newTestUseCase(repo, quotestore.New())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoQuote)
	assert.Empty(t, repo.appended)
}

func TestExecute_StaleQuote(t *testing.T) {
	repo := &stubRepository{nextID: 42}
	store := storeWithQuote()
	uc := newTestUseCase(repo, store)

	req := validRequest()
	req.Trip.Destination = "Aeroporto de Guarulhos"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrQuoteStale)
	assert.Empty(t, repo.appended)

	// Котировка не расходуется: исходные параметры все еще бронируемы
	_, ok := store.Get("session-1")
	assert.True(t, ok)
}

func TestExecute_StaleQuote_RateChanged(t *testing.T) {
	repo := &stubRepository{nextID: 42}
	uc := newTestUseCase(repo, storeWithQuote())

	req := validRequest()
	req.Trip.RatePerKM = 3.00

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrQuoteStale)
	assert.Empty(t, repo.appended)
}

func TestExecute_WhitespaceOnlyChangeKeepsQuoteFresh(t *testing.T) {
	repo := &stubRepository{nextID: 42}
	uc := newTestUseCase(repo, storeWithQuote())

	// Обрамляющие пробелы нормализуются так же, как при расчете котировки
	req := validRequest()
	req.Trip.StartAddress = "  Rua das Flores, 100  "

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, repo.appended, 1)
}

func TestExecute_DateValidation(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected error
	}{
		{"zero date", time.Time{}, ErrDateRequired},
		{"saturday", time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC), ErrWeekendDate},
		{"sunday", time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC), ErrWeekendDate},
		{"past weekday", time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), ErrPastDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepository{nextID: 42}
			store := storeWithQuote()
			uc := newTestUseCase(repo, store)

			req := validRequest()
			req.Date = tt.date

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.expected)
			assert.Empty(t, repo.appended)

			// Отклоненное бронирование не расходует котировку
			_, ok := store.Get("session-1")
			assert.True(t, ok)
		})
	}
}

func TestExecute_TodayInNegativeOffsetZone(t *testing.T) {
	// Дата приходит с проводного формата в UTC, часы сервера - в Сан-Паулу.
	// Бронирование на сегодня должно проходить, пока календарные даты совпадают
	saoPaulo := time.FixedZone("-03", -3*60*60)
	repo := &stubRepository{nextID: 42}
	uc := newTestUseCase(repo, storeWithQuote())
	uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2026, time.September, 3, 10, 0, 0, 0, saoPaulo),
	}

	req := validRequest()
	req.Date = time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, repo.appended, 1)
}

func TestExecute_SlotValidation(t *testing.T) {
	for _, slot := range []string{"", "08:00", "16:30", "09:15", "bogus"} {
		t.Run("slot "+slot, func(t *testing.T) {
			repo := &stubRepository{nextID: 42}
			uc := newTestUseCase(repo, storeWithQuote())

			req := validRequest()
			req.Slot = types.TimeString(slot)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidSlot)
			assert.Empty(t, repo.appended)
		})
	}
}

func TestExecute_PersistenceFailure(t *testing.T) {
	repo := &stubRepository{err: errors.New("connection reset")}
	store := storeWithQuote()
	uc := newTestUseCase(repo, store)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPersistence)

	// Котировка остается актуальной: пользователь может повторить вручную
	_, ok := store.Get("session-1")
	assert.True(t, ok)
}

func TestExecute_CustomerRevalidated(t *testing.T) {
	repo := &stubRepository{nextID: 42}
	uc := newTestUseCase(repo, storeWithQuote())

	req := validRequest()
	req.Customer.CPF = "529.982.247-24"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidCPF)
	assert.Empty(t, repo.appended)
}
