package reseed_availability

import (
	"net/http"

	"github.com/m04kA/SMC-TerminalService/internal/api/handlers"
)

type Handler struct {
	availability AvailabilityStore
	logger       Logger
}

func NewHandler(availability AvailabilityStore, logger Logger) *Handler {
	return &Handler{
		availability: availability,
		logger:       logger,
	}
}

// Handle POST /api/v1/availability/reseed
// Полностью пересобирает календарь открытых слотов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.availability.Reseed(r.Context()); err != nil {
		h.logger.Error("POST /availability/reseed - Failed to reseed calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /availability/reseed - Calendar reseeded")
	handlers.RespondNoContent(w)
}
