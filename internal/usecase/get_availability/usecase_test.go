package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

type fakeAvailability struct {
	dates []time.Time
	hours map[string][]types.TimeString
}

func (a *fakeAvailability) ListDates(_ context.Context) ([]time.Time, error) {
	return a.dates, nil
}

func (a *fakeAvailability) ListHours(_ context.Context, date time.Time) ([]types.TimeString, error) {
	hours, ok := a.hours[date.Format("2006-01-02")]
	if !ok {
		return []types.TimeString{}, nil
	}
	return hours, nil
}

type noopLogger struct{}

func (l *noopLogger) Info(string, ...interface{})  {}
func (l *noopLogger) Warn(string, ...interface{})  {}
func (l *noopLogger) Error(string, ...interface{}) {}

func TestUseCase_Dates(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeAvailability{dates: []time.Time{monday}}, &noopLogger{})

	resp, err := uc.Dates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []time.Time{monday}, resp.Dates)
}

func TestUseCase_Hours(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeAvailability{
		hours: map[string][]types.TimeString{
			"2026-09-07": {types.TimeString("08:00"), types.TimeString("09:30")},
		},
	}, &noopLogger{})

	resp, err := uc.Hours(context.Background(), &HoursRequest{Date: monday})
	require.NoError(t, err)
	assert.Len(t, resp.Hours, 2)

	// Неизвестная дата - пустой список, не ошибка
	resp, err = uc.Hours(context.Background(), &HoursRequest{Date: monday.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Empty(t, resp.Hours)

	_, err = uc.Hours(context.Background(), &HoursRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
