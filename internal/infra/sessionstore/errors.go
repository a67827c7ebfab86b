package sessionstore

import "errors"

var (
	// ErrSessionNotFound возвращается, когда токен неизвестен или сессия истекла
	ErrSessionNotFound = errors.New("sessionstore: session not found")

	// ErrInternal возвращается при ошибках взаимодействия с хранилищем
	ErrInternal = errors.New("sessionstore: internal error")
)
