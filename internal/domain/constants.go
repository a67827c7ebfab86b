package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot calendar defaults
const (
	DefaultHorizonDays  = 14
	DefaultOpenHour     = "08:00"
	DefaultCloseHour    = "17:30"
	DefaultSlotStepMins = 30

	// Bounds for the randomized hour-selection policy
	MinRandomOpenHours = 5
	MaxRandomOpenHours = 10
)

// Identifier generation
const (
	BookingIDPrefix = "BK-"
	// Booking numbers continue from this base plus the seeded history count
	BookingIDBase = 10000

	ScanIDPrefix  = "SC-"
	ScanIDPadding = 3
)

// Business validation constants
const (
	MaxContainerIDLength = 64
)

// InactiveStatuses список статусов, не занимающих слот
// Используется при фильтрации истории бронирований
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
