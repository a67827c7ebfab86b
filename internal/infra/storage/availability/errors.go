package availability

import "errors"

var (
	// ErrSlotTaken возвращается, когда час уже занят или никогда не предлагался
	ErrSlotTaken = errors.New("availability.store: slot already taken")

	// ErrGenerate возвращается при ошибке генерации календаря
	ErrGenerate = errors.New("availability.store: failed to generate calendar")
)
