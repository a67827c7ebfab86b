package capturedevice

import "time"

// Handle идентификатор активного захвата, выданный шлюзом камеры
type Handle string

// DeviceState состояние захвата на стороне шлюза
type DeviceState string

const (
	DeviceStateRequesting DeviceState = "requesting"
	DeviceStateActive     DeviceState = "active"
	DeviceStateStopped    DeviceState = "stopped"
)

// Constraints параметры захвата, передаются шлюзу как есть
type Constraints struct {
	FacingMode string `json:"facingMode"` // "environment" для камеры ворот
	FPS        int    `json:"fps"`
}

// DefaultConstraints параметры захвата по умолчанию
func DefaultConstraints() Constraints {
	return Constraints{FacingMode: "environment", FPS: 10}
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// startResponse ответ шлюза на запуск захвата
type startResponse struct {
	Handle Handle `json:"handle"`
}

// decodeEvent событие декодирования, полученное long-poll запросом
type decodeEvent struct {
	Text       string    `json:"text"`
	DetectedAt time.Time `json:"detectedAt"`
}

// stateResponse ответ шлюза на запрос состояния
type stateResponse struct {
	State DeviceState `json:"state"`
}

// ErrorResponse модель ошибки от шлюза камеры
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
