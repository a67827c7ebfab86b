package slotcalendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

// Config параметры генерации календаря слотов
type Config struct {
	HorizonDays int              // Количество будущих дней (сегодняшний день не включается)
	OpenHour    types.TimeString // Начало рабочего дня, например "08:00"
	CloseHour   types.TimeString // Последний слот дня, например "17:30"
	StepMinutes int              // Шаг между слотами в минутах
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() Config {
	return Config{
		HorizonDays: domain.DefaultHorizonDays,
		OpenHour:    types.TimeString(domain.DefaultOpenHour),
		CloseHour:   types.TimeString(domain.DefaultCloseHour),
		StepMinutes: domain.DefaultSlotStepMins,
	}
}

// MasterHours генерирует полный список получасовых меток рабочего дня
// от OpenHour до CloseHour включительно с шагом StepMinutes
func MasterHours(cfg Config) ([]types.TimeString, error) {
	if err := cfg.OpenHour.Validate(); err != nil {
		return nil, fmt.Errorf("slotcalendar: invalid open hour: %w", err)
	}
	if err := cfg.CloseHour.Validate(); err != nil {
		return nil, fmt.Errorf("slotcalendar: invalid close hour: %w", err)
	}
	if cfg.StepMinutes <= 0 {
		return nil, fmt.Errorf("slotcalendar: step must be positive, got %d", cfg.StepMinutes)
	}

	hours := make([]types.TimeString, 0)
	current := cfg.OpenHour

	for !current.IsAfter(cfg.CloseHour) {
		hours = append(hours, current)

		next, err := current.AddMinutes(cfg.StepMinutes)
		if err != nil {
			return nil, err
		}
		// AddMinutes заворачивается через полночь - защищаемся от вечного цикла
		if !next.IsAfter(current) {
			break
		}
		current = next
	}

	return hours, nil
}

// Generate вычисляет даты и открытые часы на горизонте cfg.HorizonDays
// начиная с завтрашнего дня. Выходные (суббота и воскресенье) исключаются.
// Пустой результат корректен, если весь горизонт приходится на закрытые дни.
//
// Функция чистая относительно своих входов: политика выбора часов передается
// снаружи, что позволяет заменить случайную подвыборку на детерминированный
// или capacity-aware источник, не трогая аллокатор.
func Generate(today time.Time, cfg Config, policy HourPolicy) ([]domain.SlotAvailability, error) {
	master, err := MasterHours(cfg)
	if err != nil {
		return nil, err
	}

	availability := make([]domain.SlotAvailability, 0, cfg.HorizonDays)

	for i := 1; i <= cfg.HorizonDays; i++ {
		date := today.AddDate(0, 0, i)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

		if isWeekend(date) {
			continue
		}

		hours := policy.SelectHours(date, master)
		availability = append(availability, domain.SlotAvailability{
			Date:  date,
			Hours: hours,
		})
	}

	return availability, nil
}

// isWeekend проверяет, что дата приходится на субботу или воскресенье
func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
