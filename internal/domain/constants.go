package domain

// Pricing constants
const (
	// FixedFee is the flat surcharge added to every quote, in BRL.
	FixedFee = 10.00

	// Stubbed distance bounds, in kilometers.
	MinDistanceKM = 5
	MaxDistanceKM = 55
)

// Booking window constants
const (
	FirstSlot       = "08:30"
	LastSlot        = "16:00"
	SlotStepMinutes = 30
	SlotsPerDay     = 16
)

// Validation constants
const (
	// MinPhoneMaskedLength is the length of the shortest canonical phone
	// form "(DD) DDDD-DDDD".
	MinPhoneMaskedLength = 14

	MaxNameLength    = 200
	MaxAddressLength = 500
)

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD, wire format
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY, message format
)
