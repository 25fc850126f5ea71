package query

import (
	"container/list"
	"sync"
)

// programCache is a thread-safe LRU of compiled queries keyed by expression.
type programCache struct {
	capacity int
	order    *list.List
	items    map[string]*list.Element
	mu       sync.Mutex
}

type cacheEntry struct {
	expression string
	query      *Query
}

func newProgramCache(capacity int) *programCache {
	return &programCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// get returns the cached query and marks it most recently used.
func (c *programCache) get(expression string) (*Query, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[expression]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).query, true
}

// put stores q, evicting the least recently used entry when full.
func (c *programCache) put(expression string, q *Query) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[expression]; ok {
		c.order.MoveToFront(el)
		el.Value.(*cacheEntry).query = q
		return
	}

	c.items[expression] = c.order.PushFront(&cacheEntry{expression: expression, query: q})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).expression)
	}
}

func (c *programCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *programCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element, c.capacity)
	c.order.Init()
}
