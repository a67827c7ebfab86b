package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

// Request модель запроса на создание записи на въезд
type Request struct {
	ContainerID string           // ID контейнера (например, "CONT-777")
	Date        time.Time        // Дата записи (без времени)
	StartTime   types.TimeString // Час слота (например, "09:30")
}

// Response модель ответа с созданной записью
type Response struct {
	ID          string           // Идентификатор бронирования вида BK-<n>
	ContainerID string           // ID контейнера
	Date        time.Time        // Дата записи
	StartTime   types.TimeString // Час слота
	Status      string           // Статус бронирования
	Message     string           // Текст подтверждения для оператора
	CreatedAt   time.Time        // Время создания
	UpdatedAt   time.Time        // Время обновления
}
