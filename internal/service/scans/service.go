package scans

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/internal/service/scans/models"
)

// Service сервис журнала сканирований.
// Журнал только дописывается: событию выдается очередной идентификатор
// SC-<n>, изменение и удаление записей не предусмотрены.
type Service struct {
	scanRepo ScanLogRepository
	idGen    IDGenerator
	logger   Logger
}

// NewService создает новый экземпляр сервиса журнала сканирований
func NewService(scanRepo ScanLogRepository, idGen IDGenerator, logger Logger) *Service {
	return &Service{
		scanRepo: scanRepo,
		idGen:    idGen,
		logger:   logger,
	}
}

// Append выдает событию идентификатор и дописывает его в журнал
func (s *Service) Append(ctx context.Context, event *domain.ScanEvent) (*domain.ScanEvent, error) {
	if event == nil || event.BookingID == "" {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	event.ID = s.idGen.Next()

	appended, err := s.scanRepo.Append(ctx, event)
	if err != nil {
		s.logger.Error("Append: repository error for scan id=%s: %v", event.ID, err)
		return nil, fmt.Errorf("%w: Append - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Append: recorded scan id=%s booking=%s confirmed=%t",
		appended.ID, appended.BookingID, appended.Confirmed)
	return appended, nil
}

// List возвращает события журнала от новых к старым
func (s *Service) List(ctx context.Context) (*models.ScanEventListResponse, error) {
	events, err := s.scanRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d scan events", len(events))
	return models.FromDomainScanEventList(events), nil
}
