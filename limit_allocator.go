package ringbuffer

import "github.com/pkg/errors"

// LimitAllocator wraps another allocator and refuses to hand out more than
// Limit slots in total. Released regions return their slots to the budget.
//
// A LimitAllocator only compares equal to itself.
type LimitAllocator[T any] struct {
	Inner Allocator[T]
	Limit int

	inUse int
}

var _ Allocator[int] = (*LimitAllocator[int])(nil)

// NewLimitAllocator returns a LimitAllocator over inner; a nil inner means
// the heap.
func NewLimitAllocator[T any](inner Allocator[T], limit int) *LimitAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}
	return &LimitAllocator[T]{Inner: inner, Limit: limit}
}

// Allocate serves n slots from Inner if the budget allows it.
func (a *LimitAllocator[T]) Allocate(n int) ([]T, error) {
	if a.inUse+n > a.Limit {
		return nil, errors.Wrapf(ErrAllocation, "limit %d slots, in use %d, want %d", a.Limit, a.inUse, n)
	}
	region, err := a.Inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	a.inUse += len(region)
	return region, nil
}

// Deallocate releases region through Inner and returns its slots to the budget.
func (a *LimitAllocator[T]) Deallocate(region []T) error {
	a.inUse -= len(region)
	return a.Inner.Deallocate(region)
}

// InUse returns the number of slots currently handed out.
func (a *LimitAllocator[T]) InUse() int { return a.inUse }

// MaxSize returns the budget.
func (a *LimitAllocator[T]) MaxSize() int { return a.Limit }

// Propagation follows Inner.
func (a *LimitAllocator[T]) Propagation() Propagation { return propagationOf(a.Inner) }
