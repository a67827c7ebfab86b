package get_availability

import (
	"time"

	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

// DatesResponse список дат, на которых остались открытые часы
type DatesResponse struct {
	Dates []time.Time
}

// HoursRequest запрос открытых часов на дату
type HoursRequest struct {
	Date time.Time
}

// HoursResponse открытые часы даты по возрастанию
// Пустой список - дата неизвестна или полностью занята
type HoursResponse struct {
	Date  time.Time
	Hours []types.TimeString
}
