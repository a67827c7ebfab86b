package scanner

import "errors"

var (
	// ErrDevice возвращается, когда захват устройства не удался
	// Причина сбоя сохраняется в цепочке ошибки и в снимке сессии
	ErrDevice = errors.New("scanner: device acquisition failed")

	// ErrNoDetection возвращается при подтверждении вне состояния Detected
	ErrNoDetection = errors.New("scanner: no detected payload to confirm")

	// ErrInvalidPayload возвращается при попытке подтвердить структурно
	// невалидный payload - сессия остается в Detected для ручного разбора
	ErrInvalidPayload = errors.New("scanner: payload is not structurally valid")

	// ErrBookingNotFound возвращается, когда бронирование из payload неизвестно
	ErrBookingNotFound = errors.New("scanner: booking not found")

	// ErrBookingNotActive возвращается, когда бронирование уже исполнено или отменено
	ErrBookingNotActive = errors.New("scanner: booking is not active")

	// ErrInternal возвращается при внутренних ошибках контроллера
	ErrInternal = errors.New("scanner: internal error")
)
