package slotcalendar

import (
	"math/rand"
	"sort"
	"time"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

// HourPolicy выбирает открытые часы для конкретной даты из мастер-списка.
// Мастер-список передается по значению снаружи и не мутируется.
type HourPolicy interface {
	SelectHours(date time.Time, master []types.TimeString) []types.TimeString
}

// RandomSubsetPolicy выбирает случайную подвыборку часов на каждую дату.
// Заглушка реального источника данных о пропускной способности терминала.
type RandomSubsetPolicy struct {
	rng      *rand.Rand
	minHours int
	maxHours int
}

// NewRandomSubsetPolicy создает политику со случайной подвыборкой от min до max часов
func NewRandomSubsetPolicy(seed int64, minHours, maxHours int) *RandomSubsetPolicy {
	if minHours < 1 {
		minHours = 1
	}
	if maxHours < minHours {
		maxHours = minHours
	}
	return &RandomSubsetPolicy{
		rng:      rand.New(rand.NewSource(seed)),
		minHours: minHours,
		maxHours: maxHours,
	}
}

// DefaultRandomSubsetPolicy политика с границами по умолчанию (5-10 часов на дату)
func DefaultRandomSubsetPolicy(seed int64) *RandomSubsetPolicy {
	return NewRandomSubsetPolicy(seed, domain.MinRandomOpenHours, domain.MaxRandomOpenHours)
}

// SelectHours возвращает отсортированную случайную подвыборку мастер-списка
func (p *RandomSubsetPolicy) SelectHours(_ time.Time, master []types.TimeString) []types.TimeString {
	count := p.minHours + p.rng.Intn(p.maxHours-p.minHours+1)
	if count > len(master) {
		count = len(master)
	}

	shuffled := make([]types.TimeString, len(master))
	copy(shuffled, master)
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	hours := shuffled[:count]
	sort.Slice(hours, func(i, j int) bool { return hours[i].IsBefore(hours[j]) })

	return hours
}

// FullDayPolicy открывает все часы мастер-списка на каждую дату.
// Детерминированная альтернатива для тестов и окружений без ограничений.
type FullDayPolicy struct{}

// SelectHours возвращает копию мастер-списка
func (FullDayPolicy) SelectHours(_ time.Time, master []types.TimeString) []types.TimeString {
	hours := make([]types.TimeString, len(master))
	copy(hours, master)
	return hours
}
