package ringbuffer

// PushBack appends a copy of v and returns its address.
func (b *Buffer[T]) PushBack(v T) (*T, error) {
	return b.EmplaceBack(func(p *T) { b.life.copyValue(p, &v) })
}

// PushFront prepends a copy of v and returns its address.
func (b *Buffer[T]) PushFront(v T) (*T, error) {
	return b.EmplaceFront(func(p *T) { b.life.copyValue(p, &v) })
}

// EmplaceBack appends an element built in place by init, which receives a
// zeroed slot. A nil init runs the Init hook.
func (b *Buffer[T]) EmplaceBack(init func(p *T)) (*T, error) {
	if err := b.ensureCapacity(b.Len() + 1); err != nil {
		return nil, err
	}
	p := &b.region[b.end]
	b.emplace(p, init)
	b.end = b.absOffset(b.end + 1)
	return p, nil
}

// EmplaceFront prepends an element built in place by init, which receives a
// zeroed slot. A nil init runs the Init hook.
func (b *Buffer[T]) EmplaceFront(init func(p *T)) (*T, error) {
	if err := b.ensureCapacity(b.Len() + 1); err != nil {
		return nil, err
	}
	at := b.absOffset(b.begin - 1)
	p := &b.region[at]
	b.emplace(p, init)
	b.begin = at
	return p, nil
}

func (b *Buffer[T]) emplace(p *T, init func(p *T)) {
	if init == nil {
		b.constructDefault(p)
		return
	}
	init(p)
	b.stats.constructed.Inc()
}

// PopBack removes the last element and returns it. It panics on an empty
// buffer.
func (b *Buffer[T]) PopBack() T {
	if b.Empty() {
		panic("ringbuffer: PopBack on empty buffer")
	}
	b.end = b.absOffset(b.end - 1)
	p := &b.region[b.end]
	v := *p
	b.destroy(p)
	return v
}

// PopFront removes the first element and returns it. It panics on an empty
// buffer.
func (b *Buffer[T]) PopFront() T {
	if b.Empty() {
		panic("ringbuffer: PopFront on empty buffer")
	}
	p := &b.region[b.begin]
	v := *p
	b.destroy(p)
	b.begin = b.absOffset(b.begin + 1)
	return v
}
