package ringbuffer

// Resize changes the length to count. Extra elements are built by the Init
// hook; surplus ones are destroyed from the back.
func (b *Buffer[T]) Resize(count int) error {
	return b.resize(count, b.constructDefault)
}

// ResizeWith is Resize filling new slots with copies of v.
func (b *Buffer[T]) ResizeWith(count int, v T) error {
	return b.resize(count, func(p *T) { b.construct(p, &v) })
}

func (b *Buffer[T]) resize(count int, fill func(p *T)) error {
	if count < 0 {
		return outOfRange(count, b.Len())
	}
	n := b.Len()
	if count <= n {
		for ; n > count; n-- {
			b.end = b.absOffset(b.end - 1)
			b.destroy(&b.region[b.end])
		}
		return nil
	}
	if err := b.ensureCapacity(count); err != nil {
		return err
	}
	for ; n < count; n++ {
		fill(&b.region[b.end])
		b.end = b.absOffset(b.end + 1)
	}
	return nil
}
