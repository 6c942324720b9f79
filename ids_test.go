package liteset

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDAllocator_StrictlyIncreasing(t *testing.T) {
	var a idAllocator

	prev := a.alloc()
	for i := 0; i < 1000; i++ {
		next := a.alloc()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestIDAllocator_ConcurrentUnique(t *testing.T) {
	var a idAllocator

	const (
		goroutines   = 8
		perGoroutine = 1000
	)

	results := make([][]uint64, goroutines)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]uint64, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				ids = append(ids, a.alloc())
			}
			results[g] = ids
		}()
	}
	wg.Wait()

	seen := make(map[uint64]bool, goroutines*perGoroutine)
	for _, ids := range results {
		for _, id := range ids {
			require.False(t, seen[id], "identifier %d handed out twice", id)
			seen[id] = true
		}
	}
}

func TestNew_DistinctIdentifiers(t *testing.T) {
	a := New[*node]()
	b := New[*node]()

	assert.NotEqual(t, a.id, b.id)
}
