package ringbuffer

import "iter"

// Insert places v before pos and returns a cursor on it. pos must come from
// b; End() appends. Elements are shifted towards whichever end is closer.
func (b *Buffer[T]) Insert(pos ConstCursor[T], v T) (Cursor[T], error) {
	return b.InsertN(pos, 1, v)
}

// InsertN places count copies of v before pos and returns a cursor on the
// first of them, or pos itself when count is 0.
func (b *Buffer[T]) InsertN(pos ConstCursor[T], count int, v T) (Cursor[T], error) {
	idx := b.indexOf(pos)
	err := b.insertBatch(idx, count, func(dst *T, _ int) {
		b.construct(dst, &v)
	})
	return b.CursorAt(idx), err
}

// InsertSlice places copies of values before pos, in order.
func (b *Buffer[T]) InsertSlice(pos ConstCursor[T], values []T) (Cursor[T], error) {
	idx := b.indexOf(pos)
	err := b.insertBatch(idx, len(values), func(dst *T, k int) {
		b.construct(dst, &values[k])
	})
	return b.CursorAt(idx), err
}

// InsertValues is InsertSlice for a literal list.
func (b *Buffer[T]) InsertValues(pos ConstCursor[T], values ...T) (Cursor[T], error) {
	return b.InsertSlice(pos, values)
}

// InsertSeq places the values produced by seq before pos, in order. The
// count is unknown up front, so each value is inserted on its own after the
// previous one. If an insertion fails, the values inserted so far stay.
func (b *Buffer[T]) InsertSeq(pos ConstCursor[T], seq iter.Seq[T]) (Cursor[T], error) {
	idx := b.indexOf(pos)
	k := 0
	for v := range seq {
		err := b.insertBatch(idx+k, 1, func(dst *T, _ int) {
			b.construct(dst, &v)
		})
		if err != nil {
			return b.CursorAt(idx), err
		}
		k++
	}
	return b.CursorAt(idx), nil
}

// InsertAt places values before logical index i, which may equal Len().
func (b *Buffer[T]) InsertAt(i int, values ...T) (Cursor[T], error) {
	if i < 0 || i > b.Len() {
		return b.End(), outOfRange(i, b.Len())
	}
	return b.InsertSlice(b.CursorAt(i).ReadOnly(), values)
}

// insertBatch opens a gap of count slots before logical index idx and
// constructs the new elements into it through fill.
//
// Front shift moves the idx elements before the gap count slots backwards
// (wrapping below offset 0); back shift moves the n-idx elements from idx on
// count slots forwards. The front is chosen when idx < n-idx. If growth is
// needed the region is reallocated first, which invalidates every cursor.
func (b *Buffer[T]) insertBatch(idx, count int, fill func(dst *T, k int)) error {
	if count <= 0 {
		return nil
	}
	n := b.Len()
	if room := b.MaxLen() - n; count > room {
		return lengthExceeded(count, room)
	}
	if err := b.ensureCapacity(n + count); err != nil {
		return err
	}

	if idx < n-idx {
		newBegin := b.absOffset(b.begin - count)
		for k := 0; k < idx; k++ {
			b.relocate(&b.region[b.absOffset(newBegin+k)], b.slot(k))
		}
		b.begin = newBegin
	} else {
		for k := n - 1; k >= idx; k-- {
			b.relocate(&b.region[b.absOffset(b.begin+k+count)], b.slot(k))
		}
		b.end = b.absOffset(b.end + count)
	}

	for k := 0; k < count; k++ {
		fill(b.slot(idx+k), k)
	}
	return nil
}
