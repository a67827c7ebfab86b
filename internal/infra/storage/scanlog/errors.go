package scanlog

import "errors"

var (
	// ErrDuplicateID возвращается при попытке вставить событие с занятым идентификатором
	ErrDuplicateID = errors.New("scanlog.repository: duplicate scan event id")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("scanlog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("scanlog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("scanlog.repository: failed to scan row")
)
