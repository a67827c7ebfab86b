package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

// AvailabilityStore интерфейс хранилища открытых слотов
type AvailabilityStore interface {
	ListDates(ctx context.Context) ([]time.Time, error)
	ListHours(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
