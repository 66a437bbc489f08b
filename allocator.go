package ringbuffer

import (
	"math"
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
)

// Allocator is the memory manager a Buffer draws its backing region from.
//
// Allocate returns a region of exactly n slots, every slot holding the zero
// value. Deallocate receives a region previously returned by Allocate after
// the buffer has destroyed every element in it.
//
// Further behaviour is opted into by implementing SizeLimiter, Propagator,
// CopySelector or Comparer.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(region []T) error
}

// SizeLimiter reports the largest region, in slots, an allocator can serve.
type SizeLimiter interface {
	MaxSize() int
}

// Propagation says whether an allocator follows its buffer's contents on
// copy assignment, move assignment and swap.
type Propagation struct {
	OnCopyAssign bool
	OnMoveAssign bool
	OnSwap       bool
}

// Propagator lets an allocator choose its own Propagation.
type Propagator interface {
	Propagation() Propagation
}

// CopySelector picks the allocator a copy of a buffer should use.
type CopySelector[T any] interface {
	SelectOnCopy() Allocator[T]
}

// Comparer reports whether memory from one allocator may be released by
// another.
type Comparer[T any] interface {
	EqualAllocator(other Allocator[T]) bool
}

var defaultPropagation = Propagation{OnMoveAssign: true, OnSwap: true}

func propagationOf[T any](a Allocator[T]) Propagation {
	if p, ok := a.(Propagator); ok {
		return p.Propagation()
	}
	return defaultPropagation
}

func selectOnCopy[T any](a Allocator[T]) Allocator[T] {
	if s, ok := a.(CopySelector[T]); ok {
		return s.SelectOnCopy()
	}
	return a
}

func allocatorsEqual[T any](a, b Allocator[T]) bool {
	if c, ok := a.(Comparer[T]); ok {
		return c.EqualAllocator(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

func maxSizeOf[T any](a Allocator[T]) int {
	if l, ok := a.(SizeLimiter); ok {
		return l.MaxSize()
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

// HeapAllocator serves regions from the Go heap. It is stateless; all
// instances are interchangeable.
type HeapAllocator[T any] struct{}

var _ Allocator[int] = HeapAllocator[int]{}

// Allocate returns make([]T, n). A length the runtime refuses to allocate is
// reported as ErrAllocation.
func (HeapAllocator[T]) Allocate(n int) (region []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			region, err = nil, errors.Wrapf(ErrAllocation, "heap %d slots: %v", n, r)
		}
	}()
	return make([]T, n), nil
}

// Deallocate leaves the region to the garbage collector.
func (HeapAllocator[T]) Deallocate([]T) error { return nil }

// Propagation propagates on every operation; instances are always equal anyway.
func (HeapAllocator[T]) Propagation() Propagation {
	return Propagation{OnCopyAssign: true, OnMoveAssign: true, OnSwap: true}
}
