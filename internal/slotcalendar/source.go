package slotcalendar

import (
	"time"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Source связывает конфигурацию, политику выбора часов и текущее время
// в готовый источник календаря для Availability Store
type Source struct {
	cfg          Config
	policy       HourPolicy
	timeProvider TimeProvider
}

// NewSource создает источник календаря
func NewSource(cfg Config, policy HourPolicy) *Source {
	return &Source{
		cfg:          cfg,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
	}
}

// WithTimeProvider подменяет провайдер времени (используется в тестах)
func (s *Source) WithTimeProvider(tp TimeProvider) *Source {
	s.timeProvider = tp
	return s
}

// Generate генерирует свежий календарь от текущей даты
func (s *Source) Generate() ([]domain.SlotAvailability, error) {
	return Generate(s.timeProvider.Now(), s.cfg, s.policy)
}
