package get_container

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TerminalService/internal/api/handlers"
	"github.com/m04kA/SMC-TerminalService/internal/service/containers"
)

const (
	msgContainerNotFound = "контейнер не найден"
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

// Handle GET /api/v1/containers/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, containers.ErrContainerNotFound):
			h.logger.Warn("GET /containers/{id} - Container not found: id=%s", id)
			handlers.RespondNotFound(w, msgContainerNotFound)

		default:
			h.logger.Error("GET /containers/{id} - Failed to get container: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
