package ringbuffer

import "go.uber.org/zap"

// ensureCapacity makes room for count elements. When growth is needed the new
// capacity is the larger of count and 1.5 times the current region size, so a
// run of single insertions costs amortised constant time. A negative count
// means the caller's length sum overflowed.
func (b *Buffer[T]) ensureCapacity(count int) error {
	if count < 0 {
		return lengthExceeded(count, b.MaxLen())
	}
	if count <= b.Cap() {
		return nil
	}
	limit := b.MaxLen()
	if count > limit {
		return lengthExceeded(count, limit)
	}
	newCap := min(max(b.mbSize()*3/2, count), limit)
	return b.reallocate(newCap)
}

// reallocate moves the contents, in logical order from offset 0, into a
// region of exactly newCap elements plus the sentinel. The old region stays
// untouched until the new one is fully populated; on allocation failure the
// buffer is unchanged.
func (b *Buffer[T]) reallocate(newCap int) error {
	n := b.Len()
	oldCap := b.Cap()
	alloc := b.allocator()
	region, err := b.allocFrom(alloc, newCap)
	if err != nil {
		return err
	}
	b.populate(alloc, region, n, func(dst *T, i int) {
		b.life.moveValue(dst, b.slot(i))
	})
	for i := 0; i < n; i++ {
		b.life.destroyValue(b.slot(i))
	}
	b.stats.relocations.Add(uint64(n))

	old := b.region
	b.region, b.begin, b.end = region, 0, n
	if old != nil {
		b.releaseTo(alloc, old)
		b.stats.reallocations.Inc()
	}

	b.logger().Debug("ring buffer reallocated",
		zap.Int("old_capacity", oldCap),
		zap.Int("new_capacity", newCap),
		zap.Int("len", n))
	return nil
}
