package scanner

import (
	"time"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
)

// State состояние сессии сканирования
type State string

const (
	StateIdle       State = "idle"
	StateRequesting State = "requesting"
	StateActive     State = "active"
	StateDetected   State = "detected"
	StateConfirmed  State = "confirmed"
	StateError      State = "error"
)

// Snapshot снимок текущего состояния сессии для отдачи наружу
// Все поля - копии: мутировать внутренности контроллера через снимок нельзя
type Snapshot struct {
	State      State
	RawText    string              // Последний декодированный текст, как есть
	Payload    *domain.ScanPayload // nil, если текст структурно невалиден
	DetectedAt *time.Time
	LastError  string // Причина последнего сбоя устройства, если была
}
