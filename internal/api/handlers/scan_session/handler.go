package scan_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TerminalService/internal/api/handlers"
	"github.com/m04kA/SMC-TerminalService/internal/integrations/capturedevice"
	"github.com/m04kA/SMC-TerminalService/internal/scanner"
)

const (
	msgPermissionDenied  = "нет доступа к камере ворот"
	msgDeviceBusy        = "камера ворот занята"
	msgDeviceUnavailable = "камера ворот недоступна"
	msgNoDetection       = "нет обнаруженного кода для подтверждения"
	msgInvalidPayload    = "код не распознан как код записи"
	msgBookingNotFound   = "бронирование из кода не найдено"
	msgBookingNotActive  = "бронирование уже исполнено или отменено"
)

type Handler struct {
	controller ScanSessionController
	logger     Logger
}

func NewHandler(controller ScanSessionController, logger Logger) *Handler {
	return &Handler{
		controller: controller,
		logger:     logger,
	}
}

// HandleStart POST /api/v1/scan-session/start
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Start(r.Context()); err != nil {
		h.respondStartError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(h.controller.Snapshot()))
}

// HandleRestart POST /api/v1/scan-session/restart
func (h *Handler) HandleRestart(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.ScanAgain(r.Context()); err != nil {
		h.respondStartError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(h.controller.Snapshot()))
}

// HandleConfirm POST /api/v1/scan-session/confirm
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	event, err := h.controller.Confirm(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, scanner.ErrNoDetection):
			h.logger.Warn("POST /scan-session/confirm - No detection to confirm")
			handlers.RespondError(w, http.StatusConflict, msgNoDetection)

		case errors.Is(err, scanner.ErrInvalidPayload):
			h.logger.Warn("POST /scan-session/confirm - Invalid payload: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidPayload)

		case errors.Is(err, scanner.ErrBookingNotFound):
			h.logger.Warn("POST /scan-session/confirm - Booking not found: %v", err)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, scanner.ErrBookingNotActive):
			h.logger.Warn("POST /scan-session/confirm - Booking not active: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgBookingNotActive)

		default:
			h.logger.Error("POST /scan-session/confirm - Failed to confirm: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /scan-session/confirm - Confirmed scan id=%s booking=%s", event.ID, event.BookingID)
	handlers.RespondJSON(w, http.StatusOK, FromScanEvent(event))
}

// HandleStop POST /api/v1/scan-session/stop
func (h *Handler) HandleStop(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Close(); err != nil {
		h.logger.Error("POST /scan-session/stop - Failed to close session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

// HandleState GET /api/v1/scan-session
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(h.controller.Snapshot()))
}

func (h *Handler) respondStartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, capturedevice.ErrPermissionDenied):
		h.logger.Warn("scan-session - Capture permission denied")
		handlers.RespondError(w, http.StatusForbidden, msgPermissionDenied)

	case errors.Is(err, capturedevice.ErrDeviceBusy):
		h.logger.Warn("scan-session - Capture device busy")
		handlers.RespondError(w, http.StatusConflict, msgDeviceBusy)

	case errors.Is(err, capturedevice.ErrDeviceUnavailable):
		h.logger.Warn("scan-session - Capture device unavailable")
		handlers.RespondError(w, http.StatusServiceUnavailable, msgDeviceUnavailable)

	default:
		h.logger.Error("scan-session - Failed to start capture: %v", err)
		handlers.RespondInternalError(w)
	}
}
