package get_availability

import (
	"context"

	getAvailability "github.com/m04kA/SMC-TerminalService/internal/usecase/get_availability"
)

type GetAvailabilityUseCase interface {
	Dates(ctx context.Context) (*getAvailability.DatesResponse, error)
	Hours(ctx context.Context, req *getAvailability.HoursRequest) (*getAvailability.HoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
