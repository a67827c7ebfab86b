package get_availability

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TerminalService/internal/api/handlers"
	"github.com/m04kA/SMC-TerminalService/internal/domain"
	getAvailability "github.com/m04kA/SMC-TerminalService/internal/usecase/get_availability"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleDates GET /api/v1/availability/dates
func (h *Handler) HandleDates(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Dates(r.Context())
	if err != nil {
		h.logger.Error("GET /availability/dates - Failed to list dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDatesResponse(result))
}

// HandleHours GET /api/v1/availability/dates/{date}/hours
func (h *Handler) HandleHours(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /availability/dates/{date}/hours - Invalid date=%s: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Hours(r.Context(), &getAvailability.HoursRequest{Date: date})
	if err != nil {
		h.logger.Error("GET /availability/dates/{date}/hours - Failed to list hours for date=%s: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromHoursResponse(result))
}
