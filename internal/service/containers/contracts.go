package containers

import (
	"context"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
)

// ContainerRepository интерфейс репозитория контейнеров
type ContainerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Container, error)
	List(ctx context.Context, filter domain.ContainersFilter) ([]*domain.Container, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
