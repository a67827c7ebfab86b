package availability

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

type fakeCalendar struct {
	days []domain.SlotAvailability
	err  error
}

func (c *fakeCalendar) Generate() ([]domain.SlotAvailability, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.days, nil
}

type noopLogger struct{}

func (l *noopLogger) Info(string, ...interface{})  {}
func (l *noopLogger) Warn(string, ...interface{})  {}
func (l *noopLogger) Error(string, ...interface{}) {}

func hoursOf(values ...string) []types.TimeString {
	hours := make([]types.TimeString, 0, len(values))
	for _, v := range values {
		hours = append(hours, types.TimeString(v))
	}
	return hours
}

func newSeededStore(t *testing.T, days []domain.SlotAvailability) *Store {
	t.Helper()
	store := NewStore(&fakeCalendar{days: days}, &noopLogger{})
	require.NoError(t, store.Reseed(context.Background()))
	return store
}

func TestStore_ListDates(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	store := newSeededStore(t, []domain.SlotAvailability{
		{Date: monday, Hours: hoursOf("08:00")},
		{Date: tuesday, Hours: hoursOf("09:30", "10:00")},
	})

	dates, err := store.ListDates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []time.Time{monday, tuesday}, dates)

	// Полностью занятая дата выпадает из списка
	require.NoError(t, store.Consume(context.Background(), monday, types.TimeString("08:00")))

	dates, err = store.ListDates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []time.Time{tuesday}, dates)
}

func TestStore_ListHours(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	store := newSeededStore(t, []domain.SlotAvailability{
		{Date: monday, Hours: hoursOf("10:00", "08:00", "09:30")},
	})

	hours, err := store.ListHours(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, hoursOf("08:00", "09:30", "10:00"), hours)

	// Неизвестная дата - пустой срез, не ошибка
	unknown := time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)
	hours, err = store.ListHours(context.Background(), unknown)
	require.NoError(t, err)
	assert.Empty(t, hours)
}

func TestStore_ConsumeTwice(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	hour := types.TimeString("09:30")

	store := newSeededStore(t, []domain.SlotAvailability{
		{Date: monday, Hours: hoursOf("09:30", "10:00")},
	})

	require.NoError(t, store.Consume(context.Background(), monday, hour))

	err := store.Consume(context.Background(), monday, hour)
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Час, которого никогда не было, неотличим от занятого
	err = store.Consume(context.Background(), monday, types.TimeString("23:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestStore_ConsumeConcurrent(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	hour := types.TimeString("09:30")

	store := newSeededStore(t, []domain.SlotAvailability{
		{Date: monday, Hours: hoursOf("09:30")},
	})

	const goroutines = 20
	var wg sync.WaitGroup
	results := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.Consume(context.Background(), monday, hour)
		}()
	}
	wg.Wait()
	close(results)

	// Ровно один победитель, остальные получают ErrSlotTaken
	winners := 0
	for err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrSlotTaken)
		}
	}
	assert.Equal(t, 1, winners)
}

func TestStore_Reseed(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	calendar := &fakeCalendar{days: []domain.SlotAvailability{
		{Date: monday, Hours: hoursOf("09:30")},
	}}

	store := NewStore(calendar, &noopLogger{})
	require.NoError(t, store.Reseed(context.Background()))
	require.NoError(t, store.Consume(context.Background(), monday, types.TimeString("09:30")))

	// Пересборка возвращает изъятый час
	require.NoError(t, store.Reseed(context.Background()))

	hours, err := store.ListHours(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, hoursOf("09:30"), hours)
}

func TestStore_ReseedError(t *testing.T) {
	store := NewStore(&fakeCalendar{err: assert.AnError}, &noopLogger{})

	err := store.Reseed(context.Background())
	assert.ErrorIs(t, err, ErrGenerate)
}
