package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)
}

func TestTimeString_Compare(t *testing.T) {
	early := TimeString("08:00")
	late := TimeString("17:30")

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:30")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "10:00", next.String())

	// Переход через полночь заворачивается
	wrapped, err := TimeString("23:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "00:15", wrapped.String())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// PostgreSQL возвращает время с секундами
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, "09:30", ts.String())

	require.NoError(t, ts.Scan([]byte("17:30:00")))
	assert.Equal(t, "17:30", ts.String())
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 4, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "09:05", NewTimeString(moment).String())
}
