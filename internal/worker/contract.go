package worker

import "context"

// AvailabilityStore интерфейс хранилища открытых слотов
type AvailabilityStore interface {
	Reseed(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
