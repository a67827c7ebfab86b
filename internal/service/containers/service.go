package containers

import (
	"context"
	"errors"
	"fmt"

	containerRepo "github.com/m04kA/SMC-TerminalService/internal/infra/storage/container"
	"github.com/m04kA/SMC-TerminalService/internal/service/containers/models"
)

// Service сервис для работы с контейнерами
type Service struct {
	containerRepo ContainerRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса контейнеров
func NewService(containerRepo ContainerRepository, logger Logger) *Service {
	return &Service{
		containerRepo: containerRepo,
		logger:        logger,
	}
}

// GetByID получает контейнер по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ContainerResponse, error) {
	s.logger.Info("GetByID: fetching container id=%s", id)

	container, err := s.containerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, containerRepo.ErrContainerNotFound) {
			s.logger.Warn("GetByID: container id=%s not found", id)
			return nil, ErrContainerNotFound
		}
		s.logger.Error("GetByID: repository error for container id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainContainer(container), nil
}

// List получает контейнеры с фильтрацией по предприятию, прибытию и записи
func (s *Service) List(ctx context.Context, req *models.ListContainersRequest) (*models.ContainerListResponse, error) {
	s.logger.Info("List: fetching containers, enterprise=%v, arrived=%v, scheduled=%v",
		req.Enterprise, req.Arrived, req.Scheduled)

	containers, err := s.containerRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d containers", len(containers))
	return models.FromDomainContainerList(containers), nil
}
