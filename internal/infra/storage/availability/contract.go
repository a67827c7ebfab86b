package availability

import "github.com/m04kA/SMC-TerminalService/internal/domain"

// CalendarGenerator источник свежего календаря слотов
type CalendarGenerator interface {
	Generate() ([]domain.SlotAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
