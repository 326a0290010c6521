package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_CountBudgetEvictsOldest(t *testing.T) {
	c := NewLRU[string, int](2, nil)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	_, ok := c.Get("a")
	assert.False(t, ok, "a should have been evicted")
	v, ok := c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_GetRefreshesRecency(t *testing.T) {
	c := NewLRU[string, int](2, nil)
	c.Set("a", 1)
	c.Set("b", 2)

	_, _ = c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b was least recently used")
	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestBytesLRU_EvictsByTotalSize(t *testing.T) {
	c := NewBytesLRU[string](10)

	assert.True(t, c.Set("google.com", make([]byte, 4)))
	assert.True(t, c.Set("youtube.com", make([]byte, 4)))
	assert.Equal(t, 8, c.Cost())

	// needs 4 more bytes, so the oldest entry goes
	assert.True(t, c.Set("openai.com", make([]byte, 4)))
	_, ok := c.Get("google.com")
	assert.False(t, ok)
	assert.Equal(t, 8, c.Cost())
	assert.Equal(t, 2, c.Len())
}

func TestBytesLRU_OversizedValueIsNotStored(t *testing.T) {
	c := NewBytesLRU[string](10)
	c.Set("small", make([]byte, 3))

	assert.False(t, c.Set("huge", make([]byte, 11)))

	_, ok := c.Get("huge")
	assert.False(t, ok)
	_, ok = c.Get("small")
	assert.True(t, ok, "a rejected value does not evict others")
}

func TestBytesLRU_ReplaceAdjustsCost(t *testing.T) {
	c := NewBytesLRU[string](10)
	c.Set("a", make([]byte, 6))
	c.Set("a", make([]byte, 2))

	assert.Equal(t, 2, c.Cost())
	assert.Equal(t, 1, c.Len())

	c.Remove("a")
	c.Remove("missing")
	assert.Equal(t, 0, c.Cost())
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[string, int](50, nil)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				key := strconv.Itoa((n*100 + j) % 80)
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 50)
}
