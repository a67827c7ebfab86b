package get_availability

import (
	"github.com/m04kA/SMC-TerminalService/internal/domain"
	getAvailability "github.com/m04kA/SMC-TerminalService/internal/usecase/get_availability"
)

// DatesResponse HTTP response model со списком открытых дат
type DatesResponse struct {
	Dates []string `json:"dates"` // ["2026-09-04", ...]
}

// HoursResponse HTTP response model с открытыми часами даты
type HoursResponse struct {
	Date  string   `json:"date"`  // "2026-09-04"
	Hours []string `json:"hours"` // ["08:00", "09:30", ...]
}

// FromDatesResponse конвертирует ответ use case в HTTP response
func FromDatesResponse(resp *getAvailability.DatesResponse) *DatesResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, date := range resp.Dates {
		dates = append(dates, date.Format(domain.DateFormat))
	}
	return &DatesResponse{Dates: dates}
}

// FromHoursResponse конвертирует ответ use case в HTTP response
func FromHoursResponse(resp *getAvailability.HoursResponse) *HoursResponse {
	hours := make([]string, 0, len(resp.Hours))
	for _, hour := range resp.Hours {
		hours = append(hours, hour.String())
	}
	return &HoursResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Hours: hours,
	}
}
