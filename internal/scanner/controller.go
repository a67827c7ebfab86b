package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TerminalService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TerminalService/internal/integrations/capturedevice"
)

const stopTimeout = 5 * time.Second

// Controller контроллер сессии сканирования на воротах терминала.
//
// Жизненный цикл: Idle -> Requesting -> Active -> Detected -> Confirmed.
// Сбой устройства переводит сессию в Error, повторный запуск - снова в
// Requesting. Инварианты, которые держит контроллер:
//   - одновременно выполняется не больше одного запуска захвата;
//   - удерживаемое устройство освобождается ровно один раз;
//   - после первого декодированного кадра захват останавливается сразу,
//     поздние кадры игнорируются.
type Controller struct {
	device       Device
	scans        ScanEventRecorder
	bookings     BookingRepository
	constraints  capturedevice.Constraints
	timeProvider TimeProvider
	logger       Logger

	mu         sync.Mutex
	state      State
	starting   bool
	handle     capturedevice.Handle
	held       bool
	rawText    string
	payload    *domain.ScanPayload
	detectedAt time.Time
	lastErr    error
}

// NewController создает новый контроллер сессии сканирования
func NewController(device Device, scans ScanEventRecorder, bookings BookingRepository, constraints capturedevice.Constraints, logger Logger) *Controller {
	return &Controller{
		device:       device,
		scans:        scans,
		bookings:     bookings,
		constraints:  constraints,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		state:        StateIdle,
	}
}

// WithTimeProvider заменяет провайдер времени (для тестирования)
func (c *Controller) WithTimeProvider(tp TimeProvider) *Controller {
	c.timeProvider = tp
	return c
}

// Start запускает сессию сканирования.
//
// Повторный вызов во время незавершенного запуска - no-op: второй клик по
// кнопке не должен породить второй захват. Запуск из Detected, Confirmed или
// Error сбрасывает результат прошлого скана и освобождает прежнее устройство,
// если оно еще удерживалось.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.starting {
		c.mu.Unlock()
		c.logger.Info("ScanSession: start already in flight, ignoring")
		return nil
	}
	c.starting = true
	prevHandle, prevHeld := c.handle, c.held
	c.handle, c.held = "", false
	c.state = StateRequesting
	c.rawText = ""
	c.payload = nil
	c.lastErr = nil
	c.mu.Unlock()

	if prevHeld {
		c.releaseDevice(prevHandle)
	}

	handle, err := c.device.Start(ctx, c.constraints, c.onDetect, c.onError)

	c.mu.Lock()
	c.starting = false
	if err != nil {
		c.state = StateError
		c.lastErr = err
		c.mu.Unlock()
		c.logger.Error("ScanSession: failed to acquire capture device: %v", err)
		return fmt.Errorf("%w: %w", ErrDevice, err)
	}
	if c.state != StateRequesting {
		// Пока шел запуск, сессию закрыли - устройство нам уже не нужно
		c.mu.Unlock()
		c.logger.Warn("ScanSession: session closed during start, releasing handle=%s", handle)
		c.releaseDevice(handle)
		return nil
	}
	c.handle = handle
	c.held = true
	c.state = StateActive
	c.mu.Unlock()

	c.logger.Info("ScanSession: capture active handle=%s", handle)
	return nil
}

// ScanAgain сбрасывает результат прошлого скана и запускает новый захват.
// Проходит через ту же защиту от повторного запуска, что и Start.
func (c *Controller) ScanAgain(ctx context.Context) error {
	c.logger.Info("ScanSession: scan again requested")
	return c.Start(ctx)
}

// Confirm подтверждает обнаруженный payload: помечает бронирование
// исполненным и дописывает событие в журнал сканирований.
//
// Сначала помечается бронирование: незнакомый идентификатор отклоняет
// подтверждение целиком, без частичных мутаций. Сессия остается в Detected,
// пока подтверждение не прошло.
func (c *Controller) Confirm(ctx context.Context) (*domain.ScanEvent, error) {
	c.mu.Lock()
	if c.state != StateDetected {
		c.mu.Unlock()
		return nil, ErrNoDetection
	}
	if c.payload == nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %q", ErrInvalidPayload, c.rawText)
	}
	payload := *c.payload
	raw := c.rawText
	c.mu.Unlock()

	scannedAt := c.timeProvider.Now()

	if err := c.bookings.MarkCompleted(ctx, payload.BookingID, scannedAt); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			c.logger.Warn("ScanSession: confirm rejected, unknown booking id=%s", payload.BookingID)
			return nil, fmt.Errorf("%w: id=%s", ErrBookingNotFound, payload.BookingID)
		case errors.Is(err, bookingRepo.ErrAlreadyCompleted), errors.Is(err, bookingRepo.ErrNotScheduled):
			c.logger.Warn("ScanSession: confirm rejected, booking not active id=%s", payload.BookingID)
			return nil, fmt.Errorf("%w: id=%s", ErrBookingNotActive, payload.BookingID)
		default:
			c.logger.Error("ScanSession: failed to mark booking completed id=%s: %v", payload.BookingID, err)
			return nil, fmt.Errorf("%w: failed to mark booking completed: %v", ErrInternal, err)
		}
	}

	event := &domain.ScanEvent{
		BookingID:      payload.BookingID,
		ContainerID:    payload.ContainerID,
		Timestamp:      scannedAt,
		DecodedPayload: raw,
		Confirmed:      true,
	}
	appended, err := c.scans.Append(ctx, event)
	if err != nil {
		c.logger.Error("ScanSession: failed to append scan event booking=%s: %v", payload.BookingID, err)
		return nil, fmt.Errorf("%w: failed to append scan event: %v", ErrInternal, err)
	}

	c.mu.Lock()
	if c.state == StateDetected {
		c.state = StateConfirmed
	}
	c.mu.Unlock()

	c.logger.Info("ScanSession: confirmed booking=%s scan=%s", payload.BookingID, appended.ID)
	return appended, nil
}

// Close завершает сессию: освобождает устройство и возвращает сессию в Idle.
// Безопасен из любого состояния, в том числе во время незавершенного запуска.
func (c *Controller) Close() error {
	c.mu.Lock()
	c.state = StateIdle
	c.rawText = ""
	c.payload = nil
	c.lastErr = nil
	handle, held := c.handle, c.held
	c.handle, c.held = "", false
	c.mu.Unlock()

	if held {
		c.releaseDevice(handle)
	}
	c.logger.Info("ScanSession: closed")
	return nil
}

// Snapshot возвращает копию текущего состояния сессии
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:   c.state,
		RawText: c.rawText,
	}
	if c.payload != nil {
		payload := *c.payload
		snap.Payload = &payload
	}
	if c.state == StateDetected || c.state == StateConfirmed {
		detectedAt := c.detectedAt
		snap.DetectedAt = &detectedAt
	}
	if c.lastErr != nil {
		snap.LastError = c.lastErr.Error()
	}
	return snap
}

// onDetect обрабатывает первый декодированный кадр от устройства
func (c *Controller) onDetect(text string) {
	c.mu.Lock()
	if c.state != StateActive {
		// Кадр пришел после остановки или сброса - игнорируем
		c.mu.Unlock()
		return
	}
	c.rawText = text
	payload, err := domain.ParseScanPayload(text)
	if err == nil {
		c.payload = payload
	}
	c.detectedAt = c.timeProvider.Now()
	c.state = StateDetected
	handle, held := c.handle, c.held
	c.handle, c.held = "", false
	c.mu.Unlock()

	// Захват останавливаем сразу: следующие кадры дали бы повторные события
	if held {
		c.releaseDevice(handle)
	}

	if err != nil {
		c.logger.Warn("ScanSession: detected structurally invalid payload: %v", err)
	} else {
		c.logger.Info("ScanSession: detected payload booking=%s", payload.BookingID)
	}
}

// onError обрабатывает сбой устройства во время захвата
func (c *Controller) onError(err error) {
	c.mu.Lock()
	if c.state != StateActive && c.state != StateRequesting {
		c.mu.Unlock()
		return
	}
	c.state = StateError
	c.lastErr = err
	handle, held := c.handle, c.held
	c.handle, c.held = "", false
	c.mu.Unlock()

	if held {
		c.releaseDevice(handle)
	}
	c.logger.Error("ScanSession: capture failed: %v", err)
}

// releaseDevice останавливает захват; вызывается только после того,
// как удержание снято под мьютексом, поэтому релиз не может задвоиться
func (c *Controller) releaseDevice(handle capturedevice.Handle) {
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	if err := c.device.Stop(ctx, handle); err != nil {
		c.logger.Error("ScanSession: failed to release capture device handle=%s: %v", handle, err)
	}
}
