package scan_session

import (
	"time"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/internal/scanner"
)

// PayloadResponse структурно валидный payload кода записи
type PayloadResponse struct {
	BookingID   string `json:"bookingId"`
	ContainerID string `json:"containerId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// SessionResponse HTTP response model с состоянием сессии сканирования
type SessionResponse struct {
	State      string           `json:"state"`
	RawText    string           `json:"rawText,omitempty"`
	Payload    *PayloadResponse `json:"payload,omitempty"`
	DetectedAt *string          `json:"detectedAt,omitempty"` // ISO 8601
	LastError  string           `json:"lastError,omitempty"`
}

// ScanEventResponse HTTP response model с подтвержденным сканированием
type ScanEventResponse struct {
	ID             string `json:"id"`
	BookingID      string `json:"bookingId"`
	ContainerID    string `json:"containerId"`
	Timestamp      string `json:"timestamp"` // ISO 8601
	DecodedPayload string `json:"decodedPayload"`
	Confirmed      bool   `json:"confirmed"`
}

// FromSnapshot конвертирует снимок сессии в HTTP response
func FromSnapshot(snap scanner.Snapshot) *SessionResponse {
	resp := &SessionResponse{
		State:     string(snap.State),
		RawText:   snap.RawText,
		LastError: snap.LastError,
	}

	if snap.Payload != nil {
		resp.Payload = &PayloadResponse{
			BookingID:   snap.Payload.BookingID,
			ContainerID: snap.Payload.ContainerID,
			Date:        snap.Payload.Date,
			Time:        snap.Payload.Time,
		}
	}
	if snap.DetectedAt != nil {
		detectedAt := snap.DetectedAt.Format(time.RFC3339)
		resp.DetectedAt = &detectedAt
	}

	return resp
}

// FromScanEvent конвертирует domain событие в HTTP response
func FromScanEvent(event *domain.ScanEvent) *ScanEventResponse {
	return &ScanEventResponse{
		ID:             event.ID,
		BookingID:      event.BookingID,
		ContainerID:    event.ContainerID,
		Timestamp:      event.Timestamp.Format(time.RFC3339),
		DecodedPayload: event.DecodedPayload,
		Confirmed:      event.Confirmed,
	}
}
