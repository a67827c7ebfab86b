package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScanPayload(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		raw := `{"bookingId":"BK-10002","containerId":"CONT-777","date":"2026-09-04","time":"09:30"}`

		payload, err := ParseScanPayload(raw)
		require.NoError(t, err)

		assert.Equal(t, "BK-10002", payload.BookingID)
		assert.Equal(t, "CONT-777", payload.ContainerID)
		assert.Equal(t, "2026-09-04", payload.Date)
		assert.Equal(t, "09:30", payload.Time)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := ParseScanPayload("not-json")
		assert.ErrorIs(t, err, ErrInvalidScanPayload)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := ParseScanPayload(`{"bookingId":"X"}`)
		assert.ErrorIs(t, err, ErrInvalidScanPayload)
	})

	t.Run("empty field", func(t *testing.T) {
		_, err := ParseScanPayload(`{"bookingId":"BK-1","containerId":"","date":"2026-09-04","time":"09:30"}`)
		assert.ErrorIs(t, err, ErrInvalidScanPayload)
	})
}

func TestScanPayload_Encode(t *testing.T) {
	payload := &ScanPayload{
		BookingID:   "BK-10001",
		ContainerID: "CONT-1",
		Date:        "2026-09-04",
		Time:        "08:00",
	}

	raw, err := payload.Encode()
	require.NoError(t, err)

	decoded, err := ParseScanPayload(raw)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}
