package typedpool

import "sync"

// Pool is a typed wrapper around sync.Pool. New values are allocated
// with new(T). If a reset function is given, values are reset when they are
// returned to the pool, so Get always hands out a clean value.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

func New[T any](reset func(*T)) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return new(T) },
		},
		reset: reset,
	}
}

func (p *Pool[T]) Get() *T {
	cachedValue := p.pool.Get().(*T)
	return cachedValue
}

func (p *Pool[T]) Put(value *T) {
	if p.reset != nil {
		p.reset(value)
	}

	p.pool.Put(value)
}

// With runs fn with a pooled value and returns the value to the pool afterwards.
// fn must not retain the value.
func With[T, R any](p *Pool[T], fn func(value *T) R) R {
	value := p.Get()
	defer p.Put(value)

	return fn(value)
}
