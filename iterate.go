package ringbuffer

import "iter"

func (b *Buffer[T]) cursor(off int) Cursor[T] {
	return NewCursor(b.region, 0, len(b.region), off)
}

func (b *Buffer[T]) constCursor(off int) ConstCursor[T] {
	return NewConstCursor(b.region, 0, len(b.region), off)
}

// indexOf converts a cursor into a logical index. End() maps to Len().
func (b *Buffer[T]) indexOf(pos ConstCursor[T]) int {
	return b.idxOf(pos.Pos())
}

// Begin returns a cursor on the first element.
func (b *Buffer[T]) Begin() Cursor[T] { return b.cursor(b.begin) }

// End returns a cursor one past the last element, i.e. on the sentinel slot
// when the buffer is full.
func (b *Buffer[T]) End() Cursor[T] { return b.cursor(b.end) }

// CBegin is the read-only Begin.
func (b *Buffer[T]) CBegin() ConstCursor[T] { return b.constCursor(b.begin) }

// CEnd is the read-only End.
func (b *Buffer[T]) CEnd() ConstCursor[T] { return b.constCursor(b.end) }

// RBegin returns a reverse cursor on the last element.
func (b *Buffer[T]) RBegin() ReverseCursor[T] {
	return ReverseCursor[T]{base: b.cursor(b.absOffset(b.end - 1))}
}

// REnd returns a reverse cursor one before the first element.
func (b *Buffer[T]) REnd() ReverseCursor[T] {
	return ReverseCursor[T]{base: b.cursor(b.absOffset(b.begin - 1))}
}

// CRBegin is the read-only RBegin.
func (b *Buffer[T]) CRBegin() ConstReverseCursor[T] { return b.RBegin().ReadOnly() }

// CREnd is the read-only REnd.
func (b *Buffer[T]) CREnd() ConstReverseCursor[T] { return b.REnd().ReadOnly() }

// CursorAt returns a cursor on logical index i; i == Len() yields End().
func (b *Buffer[T]) CursorAt(i int) Cursor[T] { return b.cursor(b.offsetOf(i)) }

// All yields index/value pairs front to back.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range b.Len() {
			if !yield(i, *b.slot(i)) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (b *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := b.Len() - 1; i >= 0; i-- {
			if !yield(i, *b.slot(i)) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range b.Len() {
			if !yield(*b.slot(i)) {
				return
			}
		}
	}
}

// Slice returns a copy of the contents in logical order.
func (b *Buffer[T]) Slice() []T {
	out := make([]T, 0, b.Len())
	for v := range b.Values() {
		out = append(out, v)
	}
	return out
}
