package get_scan_events

import (
	"net/http"

	"github.com/m04kA/SMC-TerminalService/internal/api/handlers"
)

type Handler struct {
	service ScanService
	logger  Logger
}

func NewHandler(service ScanService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/scans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /scans - Failed to list scan events: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
