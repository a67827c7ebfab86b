package models

import (
	"time"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
)

// ScanEventResponse ответ с данными события сканирования
type ScanEventResponse struct {
	ID             string    `json:"id"`        // "SC-001"
	BookingID      string    `json:"bookingId"` // "BK-10001"
	ContainerID    string    `json:"containerId"`
	Timestamp      time.Time `json:"timestamp"`
	DecodedPayload string    `json:"decodedPayload"`
	Confirmed      bool      `json:"confirmed"`
}

// ScanEventListResponse ответ со списком событий от новых к старым
type ScanEventListResponse struct {
	Scans []ScanEventResponse `json:"scans"`
}

// FromDomainScanEvent конвертирует domain модель в DTO
func FromDomainScanEvent(e *domain.ScanEvent) *ScanEventResponse {
	if e == nil {
		return nil
	}

	return &ScanEventResponse{
		ID:             e.ID,
		BookingID:      e.BookingID,
		ContainerID:    e.ContainerID,
		Timestamp:      e.Timestamp,
		DecodedPayload: e.DecodedPayload,
		Confirmed:      e.Confirmed,
	}
}

// FromDomainScanEventList конвертирует список domain моделей в DTO
func FromDomainScanEventList(events []*domain.ScanEvent) *ScanEventListResponse {
	result := make([]ScanEventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, *FromDomainScanEvent(e))
	}
	return &ScanEventListResponse{Scans: result}
}
