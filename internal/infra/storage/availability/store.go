package availability

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

// Store хранит текущую карту дата -> открытые часы.
// Владеет ею подсистема аллокации: единственная мутация - Consume,
// полная замена - Reseed. Все операции защищены одним мьютексом,
// поэтому Consume атомарен относительно конкурентных вызовов:
// первый успевший забирает час, остальные получают ErrSlotTaken.
type Store struct {
	mu       sync.Mutex
	calendar CalendarGenerator
	logger   Logger

	// dateKey (YYYY-MM-DD) -> множество открытых часов
	openHours map[string]map[types.TimeString]struct{}
	// исходные даты календаря в порядке возрастания
	dates []time.Time
}

// NewStore создает пустой store; календарь заполняется первым вызовом Reseed
func NewStore(calendar CalendarGenerator, logger Logger) *Store {
	return &Store{
		calendar:  calendar,
		logger:    logger,
		openHours: make(map[string]map[types.TimeString]struct{}),
	}
}

// ListDates возвращает все даты, на которых остался хотя бы один открытый час
func (s *Store) ListDates(ctx context.Context) ([]time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dates := make([]time.Time, 0, len(s.dates))
	for _, date := range s.dates {
		if len(s.openHours[dateKey(date)]) > 0 {
			dates = append(dates, date)
		}
	}
	return dates, nil
}

// ListHours возвращает открытые часы даты по возрастанию
// Для неизвестной или полностью занятой даты - пустой срез, не ошибка
func (s *Store) ListHours(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.openHours[dateKey(date)]
	if !ok {
		return []types.TimeString{}, nil
	}

	hours := make([]types.TimeString, 0, len(set))
	for hour := range set {
		hours = append(hours, hour)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i].IsBefore(hours[j]) })

	return hours, nil
}

// Consume атомарно изымает час из открытого множества даты.
// Возвращает ErrSlotTaken, если час отсутствует - уже занят или не предлагался.
func (s *Store) Consume(ctx context.Context, date time.Time, hour types.TimeString) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := dateKey(date)
	set, ok := s.openHours[key]
	if !ok {
		return fmt.Errorf("%w: date=%s hour=%s", ErrSlotTaken, key, hour)
	}
	if _, ok := set[hour]; !ok {
		return fmt.Errorf("%w: date=%s hour=%s", ErrSlotTaken, key, hour)
	}

	delete(set, hour)
	s.logger.Info("AvailabilityStore: consumed slot date=%s hour=%s, %d hours left", key, hour, len(set))

	return nil
}

// Reseed полностью заменяет календарь свежесгенерированным
// Используется при старте, по ночному расписанию и для изоляции тестов
func (s *Store) Reseed(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	generated, err := s.calendar.Generate()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGenerate, err)
	}

	openHours := make(map[string]map[types.TimeString]struct{}, len(generated))
	dates := make([]time.Time, 0, len(generated))

	for _, day := range generated {
		set := make(map[types.TimeString]struct{}, len(day.Hours))
		for _, hour := range day.Hours {
			set[hour] = struct{}{}
		}
		openHours[dateKey(day.Date)] = set
		dates = append(dates, day.Date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	s.mu.Lock()
	s.openHours = openHours
	s.dates = dates
	s.mu.Unlock()

	s.logger.Info("AvailabilityStore: reseeded calendar with %d open dates", len(dates))

	return nil
}

// dateKey нормализует дату в ключ YYYY-MM-DD
func dateKey(date time.Time) string {
	return date.Format(domain.DateFormat)
}
