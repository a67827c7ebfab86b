package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrInvalidScanPayload is returned when decoded text does not carry
	// all four required credential fields
	ErrInvalidScanPayload = errors.New("domain: structurally invalid scan payload")
)

// ScanPayload is the decoded content of a gate credential.
// Wire format: {"bookingId": string, "containerId": string, "date": "YYYY-MM-DD", "time": "HH:MM"}
// All four fields are required for the payload to be structurally valid.
type ScanPayload struct {
	BookingID   string `json:"bookingId"`
	ContainerID string `json:"containerId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// Validate checks structural validity: every field present and non-empty
func (p *ScanPayload) Validate() error {
	if p.BookingID == "" || p.ContainerID == "" || p.Date == "" || p.Time == "" {
		return ErrInvalidScanPayload
	}
	return nil
}

// Encode serializes the payload into its credential wire format
func (p *ScanPayload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseScanPayload decodes raw credential text into a structurally valid payload.
// Returns ErrInvalidScanPayload for non-JSON text and for JSON missing any field.
func ParseScanPayload(raw string) (*ScanPayload, error) {
	var payload ScanPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, ErrInvalidScanPayload
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ScanEvent is one immutable entry of the gate scan history.
// Created only by an explicit staff confirmation; decoding alone never creates one.
type ScanEvent struct {
	ID             string // Generated identifier, e.g. "SC-003"
	BookingID      string
	ContainerID    string
	Timestamp      time.Time // Capture-side wall clock
	DecodedPayload string    // Raw decoded text, kept verbatim
	Confirmed      bool

	CreatedAt time.Time
}
