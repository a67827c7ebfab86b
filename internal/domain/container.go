package domain

import (
	"time"

	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

// Container represents a container tracked at the terminal
type Container struct {
	ID          string // Stable external identifier, e.g. "CNTR-001"
	ArrivalDate time.Time
	ArrivalTime types.TimeString
	Arrived     bool

	// Appointment fields; Scheduled == true implies both are set
	Scheduled       bool
	AppointmentDate *time.Time
	AppointmentHour *types.TimeString

	Enterprise *string
	Port       *string
	Terminal   *string
	Lat        *float64
	Lng        *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasAppointment returns true if the container has a complete appointment
func (c *Container) HasAppointment() bool {
	return c.Scheduled && c.AppointmentDate != nil && c.AppointmentHour != nil
}

// CanBeBooked returns true if the container may take a new appointment.
// A container holds at most one appointment at a time.
func (c *Container) CanBeBooked() bool {
	return !c.Scheduled
}

// ContainersFilter фильтр для получения списка контейнеров
type ContainersFilter struct {
	Enterprise *string // Фильтр по предприятию (опционально)
	Arrived    *bool   // Фильтр по признаку прибытия (опционально)
	Scheduled  *bool   // Фильтр по наличию записи (опционально)
}
