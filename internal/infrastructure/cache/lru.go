// Package cache provides bounded in-memory caches.
package cache

import (
	"container/list"
	"sync"
)

// LRU is a thread-safe least-recently-used cache bounded by a total cost.
// Each value's cost comes from the weigh function; with a nil weigh every
// value costs 1 and the budget is an entry count.
//
// Both Get and Set mark an entry as recently used. A value whose cost alone
// exceeds the budget is not stored.
type LRU[K comparable, V any] struct {
	budget int
	used   int
	weigh  func(V) int

	mu    sync.Mutex
	items map[K]*list.Element
	order *list.List // front is most recent
}

type entry[K comparable, V any] struct {
	key   K
	value V
	cost  int
}

// NewLRU creates a cache holding at most budget cost units.
// A budget below 1 is raised to 1.
func NewLRU[K comparable, V any](budget int, weigh func(V) int) *LRU[K, V] {
	if budget <= 0 {
		budget = 1
	}
	if weigh == nil {
		weigh = func(V) int { return 1 }
	}
	return &LRU[K, V]{
		budget: budget,
		weigh:  weigh,
		items:  make(map[K]*list.Element),
		order:  list.New(),
	}
}

// NewBytesLRU creates a cache of byte slices bounded by their total length.
func NewBytesLRU[K comparable](maxBytes int) *LRU[K, []byte] {
	return NewLRU[K, []byte](maxBytes, func(b []byte) int { return len(b) })
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set stores value under key, evicting the least recently used entries
// until the budget holds. It reports whether the value was stored.
func (c *LRU[K, V]) Set(key K, value V) bool {
	cost := max(c.weigh(value), 0)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
	if cost > c.budget {
		return false
	}

	for c.used+cost > c.budget {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.removeElement(oldest)
	}

	elem := c.order.PushFront(&entry[K, V]{key: key, value: value, cost: cost})
	c.items[key] = elem
	c.used += cost
	return true
}

// Remove deletes key. A missing key is a no-op.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Cost returns the summed cost of all entries.
func (c *LRU[K, V]) Cost() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.used
}

func (c *LRU[K, V]) removeElement(elem *list.Element) {
	e := elem.Value.(*entry[K, V])
	c.order.Remove(elem)
	delete(c.items, e.key)
	c.used -= e.cost
}
