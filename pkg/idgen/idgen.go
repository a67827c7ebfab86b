package idgen

import (
	"fmt"
	"sync/atomic"
)

// Sequence выдает строго возрастающие строковые идентификаторы вида
// "<prefix><number>". Потокобезопасен: инкремент атомарный, идентификаторы
// никогда не переиспользуются.
type Sequence struct {
	prefix  string
	padding int
	counter int64
}

// NewSequence создает последовательность, стартующую с start
// Первый вызов Next вернет prefix + (start+1)
func NewSequence(prefix string, start int64) *Sequence {
	return &Sequence{prefix: prefix, counter: start}
}

// NewPaddedSequence создает последовательность с дополнением номера нулями
// до width знаков (например, "SC-007")
func NewPaddedSequence(prefix string, start int64, width int) *Sequence {
	return &Sequence{prefix: prefix, counter: start, padding: width}
}

// Next возвращает следующий идентификатор
func (s *Sequence) Next() string {
	n := atomic.AddInt64(&s.counter, 1)
	if s.padding > 0 {
		return fmt.Sprintf("%s%0*d", s.prefix, s.padding, n)
	}
	return fmt.Sprintf("%s%d", s.prefix, n)
}

// Current возвращает последний выданный номер (0, если Next еще не вызывался)
func (s *Sequence) Current() int64 {
	return atomic.LoadInt64(&s.counter)
}
