package server

import (
	"sync"

	"github.com/san-kum/sortscope/internal/export"
	"github.com/san-kum/sortscope/internal/trace"
)

type run struct {
	id       string
	timeline *trace.Timeline
	document *export.Document
}

// runCache keeps the most recent runs in memory, evicting the oldest first.
type runCache struct {
	mu       sync.Mutex
	capacity int
	order    []string
	runs     map[string]*run
}

func newRunCache(capacity int) *runCache {
	return &runCache{
		capacity: max(1, capacity),
		runs:     make(map[string]*run, capacity),
	}
}

// put stores r and returns how many older runs were evicted to make room.
func (c *runCache) put(r *run) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.runs[r.id]; !ok {
		c.order = append(c.order, r.id)
	}
	c.runs[r.id] = r

	evicted := 0
	for len(c.order) > c.capacity {
		delete(c.runs, c.order[0])
		c.order = c.order[1:]
		evicted++
	}
	return evicted
}

func (c *runCache) get(id string) (*run, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.runs[id]
	return r, ok
}

func (c *runCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.runs)
}
