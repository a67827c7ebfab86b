package capturedevice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Client клиент шлюза камеры ворот (capture daemon).
// Реализует трехфункциональный контракт провайдера устройства:
// Start(constraints, onDetect, onError) -> handle, Stop(handle), GetState(handle).
//
// Шлюз отдает события декодирования long-poll запросом; клиент превращает
// их в колбэки, чтобы контроллер сессии не знал о транспорте.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger

	mu      sync.Mutex
	pollers map[Handle]context.CancelFunc
}

// NewClient создает новый экземпляр клиента шлюза камеры
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		pollers: make(map[Handle]context.CancelFunc),
	}
}

// Start запускает захват и подписывается на события декодирования.
// onDetect вызывается при первом декодированном кадре, onError - при сбое
// опроса. Колбэки вызываются из фоновой горутины после возврата Start.
func (c *Client) Start(ctx context.Context, constraints Constraints, onDetect func(text string), onError func(err error)) (Handle, error) {
	body, err := json.Marshal(constraints)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal constraints: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/capture/start", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrDeviceUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusForbidden:
		return "", ErrPermissionDenied
	case http.StatusNotFound:
		return "", ErrDeviceUnavailable
	case http.StatusConflict:
		return "", ErrDeviceBusy
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var started startResponse
	if err := json.NewDecoder(resp.Body).Decode(&started); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if started.Handle == "" {
		return "", fmt.Errorf("%w: empty capture handle", ErrInvalidResponse)
	}

	// Запускаем опрос событий; живет до Stop или первого события
	pollCtx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	c.pollers[started.Handle] = cancel
	c.mu.Unlock()

	go c.pollEvents(pollCtx, started.Handle, onDetect, onError)

	c.log.Info("CaptureDevice: started capture handle=%s", started.Handle)
	return started.Handle, nil
}

// Stop останавливает захват и опрос событий
func (c *Client) Stop(ctx context.Context, handle Handle) error {
	c.stopPoller(handle)

	url := fmt.Sprintf("%s/capture/%s/stop", c.baseURL, handle)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		c.log.Info("CaptureDevice: stopped capture handle=%s", handle)
		return nil
	case http.StatusNotFound:
		// Уже остановлен на стороне шлюза - релиз идемпотентен
		c.log.Warn("CaptureDevice: stop for unknown handle=%s", handle)
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// GetState запрашивает состояние захвата у шлюза
func (c *Client) GetState(ctx context.Context, handle Handle) (DeviceState, error) {
	url := fmt.Sprintf("%s/capture/%s/state", c.baseURL, handle)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return "", fmt.Errorf("%w: handle=%s", ErrUnknownHandle, handle)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var state stateResponse
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return state.State, nil
}

// pollEvents опрашивает шлюз до первого события декодирования
func (c *Client) pollEvents(ctx context.Context, handle Handle, onDetect func(text string), onError func(err error)) {
	defer c.stopPoller(handle)

	url := fmt.Sprintf("%s/capture/%s/events", c.baseURL, handle)

	for {
		if ctx.Err() != nil {
			return
		}

		event, err := c.fetchEvent(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				// Остановлены через Stop - не ошибка
				return
			}
			c.log.Error("CaptureDevice: event poll failed handle=%s: %v", handle, err)
			onError(err)
			return
		}
		if event == nil {
			// Таймаут long-poll без события - повторяем
			continue
		}

		c.log.Info("CaptureDevice: decode event handle=%s", handle)
		onDetect(event.Text)
		return
	}
}

// fetchEvent выполняет один long-poll запрос
// Возвращает nil без ошибки, если событий пока нет (204)
func (c *Client) fetchEvent(ctx context.Context, url string) (*decodeEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var event decodeEvent
		if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
			return nil, fmt.Errorf("%w: failed to decode event: %v", ErrInvalidResponse, err)
		}
		return &event, nil
	case http.StatusNoContent:
		return nil, nil
	case http.StatusNotFound:
		return nil, ErrUnknownHandle
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

func (c *Client) stopPoller(handle Handle) {
	c.mu.Lock()
	cancel, ok := c.pollers[handle]
	if ok {
		delete(c.pollers, handle)
	}
	c.mu.Unlock()

	if ok {
		cancel()
	}
}
