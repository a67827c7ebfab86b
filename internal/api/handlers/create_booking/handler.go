package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TerminalService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-TerminalService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgSlotNotAvailable   = "выбранный час уже занят"
	msgContainerNotFound  = "контейнер не найден"
	msgAlreadyScheduled   = "контейнер уже записан на въезд"
	msgInvalidBookingDate = "некорректная дата записи"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: container=%s, date=%s, time=%s",
				req.ContainerID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrContainerNotFound):
			h.logger.Warn("POST /bookings - Container not found: container=%s", req.ContainerID)
			handlers.RespondNotFound(w, msgContainerNotFound)

		case errors.Is(err, createBooking.ErrContainerAlreadyScheduled):
			h.logger.Warn("POST /bookings - Container already scheduled: container=%s", req.ContainerID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyScheduled)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: container=%s, date=%s", req.ContainerID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: container=%s, error=%v",
				req.ContainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, container=%s",
		result.ID, req.ContainerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
