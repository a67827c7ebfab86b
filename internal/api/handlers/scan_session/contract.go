package scan_session

import (
	"context"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/internal/scanner"
)

type ScanSessionController interface {
	Start(ctx context.Context) error
	ScanAgain(ctx context.Context) error
	Confirm(ctx context.Context) (*domain.ScanEvent, error)
	Close() error
	Snapshot() scanner.Snapshot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
