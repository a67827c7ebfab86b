package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	availabilityStore "github.com/m04kA/SMC-TerminalService/internal/infra/storage/availability"
	containerRepo "github.com/m04kA/SMC-TerminalService/internal/infra/storage/container"
)

// UseCase use case для создания записи на въезд контейнера
type UseCase struct {
	containerRepo ContainerRepository
	bookingRepo   BookingRepository
	availability  AvailabilityStore
	idGen         IDGenerator
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	containerRepo ContainerRepository,
	bookingRepo BookingRepository,
	availability AvailabilityStore,
	idGen IDGenerator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		containerRepo: containerRepo,
		bookingRepo:   bookingRepo,
		availability:  availability,
		idGen:         idGen,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider заменяет провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: container=%s, date=%s, time=%s",
		req.ContainerID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем контейнер
	cont, err := uc.containerRepo.GetByID(ctx, req.ContainerID)
	if err != nil {
		if errors.Is(err, containerRepo.ErrContainerNotFound) {
			uc.logger.Warn("CreateBooking: container id=%s not found", req.ContainerID)
			return nil, ErrContainerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get container id=%s: %v", req.ContainerID, err)
		return nil, fmt.Errorf("%w: failed to get container: %v", ErrInternal, err)
	}

	// 4. Контейнер с действующей записью повторно не бронируется
	if !cont.CanBeBooked() {
		uc.logger.Warn("CreateBooking: container id=%s already scheduled", req.ContainerID)
		return nil, ErrContainerAlreadyScheduled
	}

	// 5. Атомарно изымаем час из открытых слотов: первый успевший выигрывает
	if err := uc.availability.Consume(ctx, req.Date, req.StartTime); err != nil {
		if errors.Is(err, availabilityStore.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot date=%s time=%s not available",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to consume slot: %v", err)
		return nil, fmt.Errorf("%w: failed to consume slot: %v", ErrInternal, err)
	}

	// 6. Выдаем идентификатор - строго возрастающий, с префиксом BK-
	booking := &domain.Booking{
		ID:          uc.idGen.Next(),
		ContainerID: cont.ID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		Status:      domain.StatusScheduled,
		Enterprise:  cont.Enterprise,
	}

	// 7. Сохраняем бронирование и помечаем контейнер в одной транзакции
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		if err := uc.containerRepo.SetAppointment(txCtx, cont.ID, req.Date, req.StartTime); err != nil {
			uc.logger.Error("CreateBooking: failed to set appointment on container id=%s: %v", cont.ID, err)
			return fmt.Errorf("%w: failed to set appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	// Конвертируем в response
	return &Response{
		ID:          created.ID,
		ContainerID: created.ContainerID,
		Date:        created.Date,
		StartTime:   created.StartTime,
		Status:      string(created.Status),
		Message:     confirmationMessage(created),
		CreatedAt:   created.CreatedAt,
		UpdatedAt:   created.UpdatedAt,
	}, nil
}

// confirmationMessage собирает текст подтверждения для оператора
func confirmationMessage(booking *domain.Booking) string {
	return fmt.Sprintf("Appointment scheduled for %s at %s",
		booking.Date.Format(domain.DateFormat), booking.StartTime)
}
