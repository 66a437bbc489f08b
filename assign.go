package ringbuffer

import "iter"

// CopyFrom replaces b's contents with copies of other's. b adopts other's
// allocator only when that allocator propagates on copy assignment.
func (b *Buffer[T]) CopyFrom(other *Buffer[T]) error {
	if b == other {
		return nil
	}
	n := other.Len()
	src := other.allocator()
	if !propagationOf(src).OnCopyAssign || allocatorsEqual(b.allocator(), src) {
		return b.assignBatch(n, func(dst *T, i int) {
			b.construct(dst, other.slot(i))
		})
	}

	region, err := b.allocFrom(src, n)
	if err != nil {
		return err
	}
	b.populate(src, region, n, func(dst *T, i int) {
		b.life.copyValue(dst, other.slot(i))
	})
	b.stats.constructed.Add(uint64(n))
	b.destroyAll()
	b.releaseRegion()
	b.alloc = src
	b.region, b.begin, b.end = region, 0, n
	return nil
}

// MoveFrom replaces b's contents with other's and leaves other empty.
//
// The region changes hands when other's allocator propagates on move
// assignment or equals b's. Otherwise b keeps its allocator and the elements
// are moved one by one into a region from it.
func (b *Buffer[T]) MoveFrom(other *Buffer[T]) error {
	if b == other {
		return nil
	}
	src := other.allocator()
	switch {
	case propagationOf(src).OnMoveAssign:
		b.Clear()
		b.alloc = src
		b.take(other)
		return nil
	case allocatorsEqual(b.allocator(), src):
		b.Clear()
		b.take(other)
		return nil
	}
	alloc := b.allocator()
	region, err := b.allocFrom(alloc, other.Len())
	if err != nil {
		return err
	}
	b.adoptElements(alloc, region, other)
	return nil
}

// Assign replaces the contents with count copies of v.
func (b *Buffer[T]) Assign(count int, v T) error {
	return b.assignBatch(count, func(dst *T, _ int) {
		b.construct(dst, &v)
	})
}

// AssignSlice replaces the contents with copies of values.
func (b *Buffer[T]) AssignSlice(values []T) error {
	return b.assignBatch(len(values), func(dst *T, i int) {
		b.construct(dst, &values[i])
	})
}

// AssignValues is AssignSlice for a literal list.
func (b *Buffer[T]) AssignValues(values ...T) error {
	return b.AssignSlice(values)
}

// AssignSeq replaces the contents with the values produced by seq. The values
// are gathered in a staging buffer with the same options first, so b is left
// untouched if an allocation fails part way.
func (b *Buffer[T]) AssignSeq(seq iter.Seq[T]) error {
	staged := &Buffer[T]{alloc: b.allocator(), life: b.life, log: b.log}
	for v := range seq {
		if _, err := staged.PushBack(v); err != nil {
			staged.Clear()
			b.stats.merge(&staged.stats)
			return err
		}
	}
	b.Clear()
	b.take(staged)
	b.stats.merge(&staged.stats)
	return nil
}

// assignBatch destroys the contents and constructs count elements from
// offset 0 through fill. A region too small for count is replaced by one of
// exactly count slots; the replacement is allocated before anything is
// destroyed.
func (b *Buffer[T]) assignBatch(count int, fill func(dst *T, i int)) error {
	if count < 0 {
		return outOfRange(count, 0)
	}
	if count > b.Cap() {
		if limit := b.MaxLen(); count > limit {
			return lengthExceeded(count, limit)
		}
		region, err := b.allocFrom(b.allocator(), count)
		if err != nil {
			return err
		}
		b.destroyAll()
		b.releaseRegion()
		b.region = region
	} else {
		b.destroyAll()
	}
	for i := 0; i < count; i++ {
		fill(&b.region[i], i)
		b.end = i + 1
	}
	return nil
}
