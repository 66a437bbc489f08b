package ringbuffer

import (
	"sync"

	"github.com/pkg/errors"
)

// PoolAllocator recycles released regions so buffers that keep growing and
// shrinking do not ask the heap for fresh memory every time.
//
// Regions are kept in one sync.Pool per slot count; a region is only reused
// for a request of exactly its size.
type PoolAllocator[T any] struct {
	mu    sync.Mutex
	pools map[int]*sync.Pool
}

var _ Allocator[int] = (*PoolAllocator[int])(nil)

// NewPoolAllocator returns an empty PoolAllocator.
func NewPoolAllocator[T any]() *PoolAllocator[T] {
	return &PoolAllocator[T]{pools: make(map[int]*sync.Pool)}
}

// pool returns the sync.Pool for size n, creating it on first use.
func (a *PoolAllocator[T]) pool(n int) *sync.Pool {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.pools[n]
	if !ok {
		p = &sync.Pool{New: func() any {
			region := make([]T, n)
			return &region
		}}
		a.pools[n] = p
	}
	return p
}

// Allocate takes a region of n slots from the pool or makes a new one. A
// length the runtime refuses to allocate is reported as ErrAllocation.
func (a *PoolAllocator[T]) Allocate(n int) (region []T, err error) {
	if n == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			region, err = nil, errors.Wrapf(ErrAllocation, "pool %d slots: %v", n, r)
		}
	}()
	return *a.pool(n).Get().(*[]T), nil
}

// Deallocate zeroes region and returns it to its pool.
func (a *PoolAllocator[T]) Deallocate(region []T) error {
	if len(region) == 0 {
		return nil
	}
	clear(region)
	a.pool(len(region)).Put(&region)
	return nil
}

// Propagation follows the contents on move and swap, not on copy.
func (a *PoolAllocator[T]) Propagation() Propagation {
	return Propagation{OnMoveAssign: true, OnSwap: true}
}
