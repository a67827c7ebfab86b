package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

// ContainerRepository интерфейс репозитория контейнеров
type ContainerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Container, error)
	SetAppointment(ctx context.Context, id string, date time.Time, hour types.TimeString) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AvailabilityStore интерфейс хранилища открытых слотов
type AvailabilityStore interface {
	Consume(ctx context.Context, date time.Time, hour types.TimeString) error
}

// IDGenerator источник идентификаторов бронирований
type IDGenerator interface {
	Next() string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
