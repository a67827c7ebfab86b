package capturedevice

import "errors"

var (
	// ErrPermissionDenied возвращается, когда доступ к камере запрещен
	ErrPermissionDenied = errors.New("capturedevice client: camera permission denied")

	// ErrDeviceUnavailable возвращается, когда камера отсутствует или недоступна
	ErrDeviceUnavailable = errors.New("capturedevice client: no camera found or camera unavailable")

	// ErrDeviceBusy возвращается, когда камера уже захвачена другим клиентом
	ErrDeviceBusy = errors.New("capturedevice client: camera is in use")

	// ErrUnknownHandle возвращается при операции над неизвестным handle
	ErrUnknownHandle = errors.New("capturedevice client: unknown capture handle")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("capturedevice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза камеры
	ErrInvalidResponse = errors.New("capturedevice client: invalid response")
)
