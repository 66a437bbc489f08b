package ringbuffer

import "go.uber.org/zap"

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool { return b.begin == b.end }

// Len returns the number of elements.
func (b *Buffer[T]) Len() int {
	if len(b.region) == 0 {
		return 0
	}
	return pwrap(b.end-b.begin, len(b.region))
}

// Cap returns how many elements fit before the buffer has to grow.
func (b *Buffer[T]) Cap() int {
	if len(b.region) == 0 {
		return 0
	}
	return len(b.region) - 1
}

// MaxLen returns the largest length the allocator can ever back.
func (b *Buffer[T]) MaxLen() int {
	return max(maxSizeOf(b.allocator())-1, 0)
}

// Reserve makes room for at least n elements. It reallocates to exactly n
// when n exceeds Cap, invalidating every cursor, and does nothing otherwise.
func (b *Buffer[T]) Reserve(n int) error {
	if n <= b.Cap() {
		return nil
	}
	if limit := b.MaxLen(); n > limit {
		return lengthExceeded(n, limit)
	}
	return b.reallocate(n)
}

// ShrinkToFit drops unused capacity. An empty buffer releases its region
// entirely; otherwise the contents move to a region sized exactly to Len.
func (b *Buffer[T]) ShrinkToFit() error {
	n := b.Len()
	switch {
	case n == 0:
		if b.region == nil {
			return nil
		}
		oldCap := b.Cap()
		b.releaseRegion()
		b.logger().Debug("ring buffer released",
			zap.Int("old_capacity", oldCap))
		return nil
	case n < b.Cap():
		return b.reallocate(n)
	}
	return nil
}
