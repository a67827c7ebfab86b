package domain

import (
	"time"

	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

// BookingStatus represents the status of a pickup appointment
type BookingStatus string

const (
	StatusScheduled BookingStatus = "Scheduled"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

// Booking represents a pickup appointment bound to a container
type Booking struct {
	ID          string // Generated identifier, e.g. "BK-10001"
	ContainerID string
	Date        time.Time
	StartTime   types.TimeString
	Status      BookingStatus

	// Denormalized for history views
	Enterprise *string

	// Set when the gate scan is confirmed
	ScannedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusScheduled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled
}

// IsCompleted returns true if the booking was fulfilled at the gate
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}
