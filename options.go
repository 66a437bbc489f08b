package ringbuffer

import "go.uber.org/zap"

// Options configures a Buffer.
//
//   - Allocator: memory manager for the backing region (nil = HeapAllocator)
//   - Lifecycle: construct/destroy hooks for elements (zero value = plain Go semantics)
//   - Logger:    receives reallocation and release events (nil = no logging)
//
// See DefaultOptions for the defaults used by New.
type Options[T any] struct {
	Allocator Allocator[T]
	Lifecycle Lifecycle[T]
	Logger    *zap.Logger
}

// DefaultOptions returns the options New uses.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Allocator: HeapAllocator[T]{},
		Logger:    zap.NewNop(),
	}
}

func (o Options[T]) withDefaults() Options[T] {
	if o.Allocator == nil {
		o.Allocator = HeapAllocator[T]{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
