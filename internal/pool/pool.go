// Package pool provides a small generic object pool for snapflag parsing
// Used by the parser to recycle per-call scratch state
package pool

import (
	"sync"
	"sync/atomic"
)

// Pool provides a generic, type-safe object pool with an optional reset hook
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // Optional reset function called before reuse

	gets atomic.Int64
	news atomic.Int64
}

// New creates a new generic pool with the given factory function
func New[T any](factory func() *T) *Pool[T] {
	p := &Pool[T]{}
	p.pool.New = func() any {
		p.news.Add(1)
		return factory()
	}
	return p
}

// NewWithReset creates a pool with a reset function called before reuse
func NewWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := New(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	p.gets.Add(1)
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// Stats returns how many objects were requested and how many had to be created
func (p *Pool[T]) Stats() (gets, created int64) {
	return p.gets.Load(), p.news.Load()
}
