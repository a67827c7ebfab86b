package reseed_availability

import "context"

type AvailabilityStore interface {
	Reseed(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
