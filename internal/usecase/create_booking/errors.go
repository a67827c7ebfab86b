package create_booking

import "errors"

var (
	// ErrContainerNotFound возвращается, когда контейнер не найден
	ErrContainerNotFound = errors.New("create_booking: container not found")

	// ErrContainerAlreadyScheduled возвращается, когда у контейнера уже есть запись
	ErrContainerAlreadyScheduled = errors.New("create_booking: container already scheduled")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_booking: invalid appointment date")

	// ErrSlotNotAvailable возвращается, когда выбранный час уже занят или не предлагался
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
