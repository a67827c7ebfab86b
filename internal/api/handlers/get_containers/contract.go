package get_containers

import (
	"context"

	"github.com/m04kA/SMC-TerminalService/internal/service/containers/models"
)

type ContainerService interface {
	List(ctx context.Context, req *models.ListContainersRequest) (*models.ContainerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
