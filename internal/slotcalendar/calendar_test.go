package slotcalendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

func TestMasterHours(t *testing.T) {
	hours, err := MasterHours(DefaultConfig())
	require.NoError(t, err)

	// 08:00 .. 17:30 с шагом 30 минут, включая обе границы
	require.Len(t, hours, 20)
	assert.Equal(t, "08:00", hours[0].String())
	assert.Equal(t, "08:30", hours[1].String())
	assert.Equal(t, "17:30", hours[len(hours)-1].String())
}

func TestMasterHours_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StepMinutes = 0

	_, err := MasterHours(cfg)
	assert.Error(t, err)
}

func TestGenerate_SkipsWeekends(t *testing.T) {
	// Пятница: горизонт начинается с субботы
	today := time.Date(2026, 9, 4, 10, 0, 0, 0, time.UTC)

	days, err := Generate(today, DefaultConfig(), FullDayPolicy{})
	require.NoError(t, err)
	require.NotEmpty(t, days)

	for _, day := range days {
		weekday := day.Date.Weekday()
		assert.NotEqual(t, time.Saturday, weekday, "date %s is a Saturday", day.Date)
		assert.NotEqual(t, time.Sunday, weekday, "date %s is a Sunday", day.Date)
	}

	// 14 дней с 2026-09-05 по 2026-09-18 содержат 10 будних
	assert.Len(t, days, 10)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), days[0].Date)
}

func TestGenerate_ExcludesToday(t *testing.T) {
	today := time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)

	days, err := Generate(today, DefaultConfig(), FullDayPolicy{})
	require.NoError(t, err)

	for _, day := range days {
		assert.True(t, day.Date.After(today.Truncate(24*time.Hour)))
		assert.NotEqual(t, today.Format(domain.DateFormat), day.Date.Format(domain.DateFormat))
	}
}

func TestGenerate_EmptyHorizon(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HorizonDays = 0

	days, err := Generate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), cfg, FullDayPolicy{})
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestRandomSubsetPolicy_Bounds(t *testing.T) {
	master, err := MasterHours(DefaultConfig())
	require.NoError(t, err)

	policy := DefaultRandomSubsetPolicy(42)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		hours := policy.SelectHours(date, master)

		assert.GreaterOrEqual(t, len(hours), domain.MinRandomOpenHours)
		assert.LessOrEqual(t, len(hours), domain.MaxRandomOpenHours)

		// Часы отсортированы и без дубликатов
		seen := make(map[types.TimeString]struct{}, len(hours))
		for j, hour := range hours {
			if j > 0 {
				assert.True(t, hours[j-1].IsBefore(hour))
			}
			_, dup := seen[hour]
			assert.False(t, dup)
			seen[hour] = struct{}{}
		}
	}
}

func TestRandomSubsetPolicy_Deterministic(t *testing.T) {
	master, err := MasterHours(DefaultConfig())
	require.NoError(t, err)

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	first := DefaultRandomSubsetPolicy(7).SelectHours(date, master)
	second := DefaultRandomSubsetPolicy(7).SelectHours(date, master)

	assert.Equal(t, first, second)
}

func TestSource_Generate(t *testing.T) {
	source := NewSource(DefaultConfig(), FullDayPolicy{}).
		WithTimeProvider(&fixedTimeProvider{now: time.Date(2026, 9, 4, 10, 0, 0, 0, time.UTC)})

	days, err := source.Generate()
	require.NoError(t, err)
	assert.Len(t, days, 10)

	for _, day := range days {
		assert.Len(t, day.Hours, 20)
	}
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}
