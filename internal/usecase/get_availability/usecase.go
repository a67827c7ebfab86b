package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
)

// UseCase use case для чтения открытых слотов
type UseCase struct {
	availability AvailabilityStore
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityStore, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		logger:       logger,
	}
}

// Dates возвращает даты, на которых остался хотя бы один открытый час
func (uc *UseCase) Dates(ctx context.Context) (*DatesResponse, error) {
	dates, err := uc.availability.ListDates(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list dates: %v", err)
		return nil, fmt.Errorf("%w: failed to list dates: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: %d open dates", len(dates))
	return &DatesResponse{Dates: dates}, nil
}

// Hours возвращает открытые часы на указанную дату
func (uc *UseCase) Hours(ctx context.Context, req *HoursRequest) (*HoursResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	hours, err := uc.availability.ListHours(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list hours for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list hours: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: date=%s has %d open hours",
		req.Date.Format(domain.DateFormat), len(hours))
	return &HoursResponse{Date: req.Date, Hours: hours}, nil
}
