package get_scan_events

import (
	"context"

	"github.com/m04kA/SMC-TerminalService/internal/service/scans/models"
)

type ScanService interface {
	List(ctx context.Context) (*models.ScanEventListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
