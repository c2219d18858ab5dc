package domain

import (
	"time"

	"github.com/AneFreitas/agendamentodeviagem/pkg/types"
)

// Customer identifies the person booking a trip.
// Captured once per booking attempt and re-validated on every submission.
type Customer struct {
	FullName string `json:"fullName"`
	CPF      string `json:"cpf"`   // masked, DDD.DDD.DDD-DD
	Phone    string `json:"phone"` // masked, (DD) DDDDD-DDDD
}

// TripRequest holds the trip inputs a quote is computed from.
// Transient: never persisted on its own.
type TripRequest struct {
	StartAddress string  `json:"startAddress"`
	Destination  string  `json:"destination"`
	RatePerKM    float64 `json:"ratePerKm"`
}

// Quote is a priced distance estimate tied to a specific TripRequest.
// A quote is only usable for booking while its Trip snapshot matches the
// trip inputs of the booking request.
type Quote struct {
	DistanceKM float64     `json:"distanceKm"`
	Price      float64     `json:"price"`
	Trip       TripRequest `json:"trip"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// MatchesTrip reports whether the quote was produced for exactly these
// trip inputs. Any change to addresses or rate invalidates the quote.
func (q *Quote) MatchesTrip(t TripRequest) bool {
	return q.Trip == t
}

// Appointment is the immutable record persisted on booking confirmation.
// Invariant: never constructed with a weekend date, a checksum-invalid CPF
// or a quote that does not match the trip inputs.
type Appointment struct {
	ID        int64            `json:"id,omitempty"` // assigned by persistence, absent in the stored payload
	SessionID string           `json:"sessionId"`
	Customer  Customer         `json:"customer"`
	Trip      TripRequest      `json:"trip"`
	Date      time.Time        `json:"date"`
	Slot      types.TimeString `json:"slot"`
	Quote     Quote            `json:"quote"`
	CreatedAt time.Time        `json:"createdAt"`
}
