package ringbuffer

import "fmt"

// Erase removes the element at pos and returns a cursor on the element that
// followed it. pos must reference an element of b; End() panics.
func (b *Buffer[T]) Erase(pos ConstCursor[T]) Cursor[T] {
	idx, n := b.indexOf(pos), b.Len()
	if n == 0 || idx >= n {
		panic(fmt.Sprintf("ringbuffer: Erase at index %d of %d", idx, n))
	}
	b.eraseIndex(idx)
	return b.CursorAt(idx)
}

// EraseAt removes the element at logical index i.
func (b *Buffer[T]) EraseAt(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.eraseIndex(i)
	return nil
}

// eraseIndex closes the hole at idx from whichever side holds fewer elements.
func (b *Buffer[T]) eraseIndex(idx int) {
	n := b.Len()
	b.destroy(b.slot(idx))
	if idx < n-1-idx {
		for k := idx - 1; k >= 0; k-- {
			b.relocate(b.slot(k+1), b.slot(k))
		}
		b.begin = b.absOffset(b.begin + 1)
		return
	}
	for k := idx + 1; k < n; k++ {
		b.relocate(b.slot(k-1), b.slot(k))
	}
	b.end = b.absOffset(b.end - 1)
}
