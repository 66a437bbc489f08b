package ringbuffer

// pwrap maps val into [0, wrap) with floor semantics, so negative offsets
// land on the tail of the region. wrap must be positive.
func pwrap(val, wrap int) int {
	return ((val % wrap) + wrap) % wrap
}

// mbSize is the number of slots in the backing region, sentinel included.
func (b *Buffer[T]) mbSize() int { return len(b.region) }

// absOffset wraps any offset into the region.
func (b *Buffer[T]) absOffset(off int) int {
	if len(b.region) == 0 {
		return 0
	}
	return pwrap(off, len(b.region))
}

// offsetOf converts a logical index into a region offset.
func (b *Buffer[T]) offsetOf(idx int) int {
	return b.absOffset(b.begin + idx)
}

// idxOf converts a region offset into a logical index.
func (b *Buffer[T]) idxOf(off int) int {
	return b.absOffset(off - b.begin)
}

// slot returns the address of the element at logical index idx.
func (b *Buffer[T]) slot(idx int) *T {
	return &b.region[b.offsetOf(idx)]
}

func (b *Buffer[T]) checkIndex(idx int) error {
	if idx < 0 || idx >= b.Len() {
		return outOfRange(idx, b.Len())
	}
	return nil
}
