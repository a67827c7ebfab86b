package scanner

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/internal/integrations/capturedevice"
)

// Device контракт провайдера устройства захвата
// Контроллер зависит только от этих трех функций
type Device interface {
	Start(ctx context.Context, constraints capturedevice.Constraints, onDetect func(text string), onError func(err error)) (capturedevice.Handle, error)
	Stop(ctx context.Context, handle capturedevice.Handle) error
	GetState(ctx context.Context, handle capturedevice.Handle) (capturedevice.DeviceState, error)
}

// ScanEventRecorder интерфейс журнала сканирований
// Append присваивает событию идентификатор и записывает его
type ScanEventRecorder interface {
	Append(ctx context.Context, event *domain.ScanEvent) (*domain.ScanEvent, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	MarkCompleted(ctx context.Context, id string, scannedAt time.Time) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
