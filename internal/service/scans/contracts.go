package scans

import (
	"context"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
)

// ScanLogRepository интерфейс журнала сканирований
type ScanLogRepository interface {
	Append(ctx context.Context, event *domain.ScanEvent) (*domain.ScanEvent, error)
	List(ctx context.Context) ([]*domain.ScanEvent, error)
}

// IDGenerator источник идентификаторов событий сканирования
type IDGenerator interface {
	Next() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
