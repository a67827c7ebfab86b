package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_Next(t *testing.T) {
	seq := NewSequence("BK-", 10000)

	assert.Equal(t, "BK-10001", seq.Next())
	assert.Equal(t, "BK-10002", seq.Next())
	assert.Equal(t, int64(10002), seq.Current())
}

func TestPaddedSequence_Next(t *testing.T) {
	seq := NewPaddedSequence("SC-", 0, 3)

	assert.Equal(t, "SC-001", seq.Next())
	assert.Equal(t, "SC-002", seq.Next())

	// Дополнение не обрезает большие номера
	wide := NewPaddedSequence("SC-", 999, 3)
	assert.Equal(t, "SC-1000", wide.Next())
}

func TestSequence_ConcurrentUnique(t *testing.T) {
	seq := NewSequence("BK-", 0)

	const goroutines = 50
	ids := make(chan string, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- seq.Next()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, goroutines)
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, goroutines)
}
