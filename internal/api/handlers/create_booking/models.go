package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	createBooking "github.com/m04kA/SMC-TerminalService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ContainerID string `json:"containerId"` // "CONT-777"
	Date        string `json:"date"`        // "2026-09-04"
	StartTime   string `json:"startTime"`   // "09:30"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string `json:"id"`
	ContainerID string `json:"containerId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	Status      string `json:"status"`
	Message     string `json:"message"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ContainerID: r.ContainerID,
		Date:        date,
		StartTime:   startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		ContainerID: resp.ContainerID,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		Status:      resp.Status,
		Message:     resp.Message,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
