package domain

import (
	"time"

	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

// SlotAvailability represents the set of open pickup hours for one calendar day.
// Dates are never weekend days; hours are unique within a date.
type SlotAvailability struct {
	Date  time.Time
	Hours []types.TimeString
}

// HasHour returns true if the hour is currently open on this date
func (s *SlotAvailability) HasHour(hour types.TimeString) bool {
	for _, h := range s.Hours {
		if h == hour {
			return true
		}
	}
	return false
}

// IsExhausted returns true if every hour of the date has been consumed
func (s *SlotAvailability) IsExhausted() bool {
	return len(s.Hours) == 0
}
