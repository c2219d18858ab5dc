package quotestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AneFreitas/agendamentodeviagem/internal/domain"
)

func testQuote(destination string) domain.Quote {
	return domain.Quote{
		DistanceKM: 12,
		Price:      43.00,
		Trip: domain.TripRequest{
			StartAddress: "Rua das Flores, 100",
			Destination:  destination,
			RatePerKM:    2.75,
		},
		CreatedAt: time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_PutGet(t *testing.T) {
	store := New()

	_, ok := store.Get("session-1")
	assert.False(t, ok)

	q := testQuote("Av. Paulista, 1000")
	store.Put("session-1", q)

	got, ok := store.Get("session-1")
	require.True(t, ok)
	assert.Equal(t, q, got)

	// Котировки других сессий не видны
	_, ok = store.Get("session-2")
	assert.False(t, ok)
}

func TestStore_PutReplaces(t *testing.T) {
	store := New()

	store.Put("session-1", testQuote("Av. Paulista, 1000"))
	newer := testQuote("Aeroporto de Guarulhos")
	store.Put("session-1", newer)

	got, ok := store.Get("session-1")
	require.True(t, ok)
	assert.Equal(t, newer, got)
}

func TestStore_Invalidate(t *testing.T) {
	store := New()

	store.Put("session-1", testQuote("Av. Paulista, 1000"))
	store.Invalidate("session-1")

	_, ok := store.Get("session-1")
	assert.False(t, ok)

	// Инвалидация отсутствующей котировки безопасна
	store.Invalidate("session-1")
}
