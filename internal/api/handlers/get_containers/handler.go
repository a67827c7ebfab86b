package get_containers

import (
	"net/http"

	"github.com/m04kA/SMC-TerminalService/internal/api/handlers"
)

type Handler struct {
	service ContainerService
	logger  Logger
}

func NewHandler(service ContainerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/containers?enterprise=...&arrived=true&scheduled=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := parseListRequest(r.URL.Query())

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /containers - Failed to list containers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
