package ringbuffer

// At returns the element at logical index i, or an error wrapping
// ErrOutOfRange when i is not in [0, Len()).
func (b *Buffer[T]) At(i int) (T, error) {
	if err := b.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return *b.slot(i), nil
}

// AtPtr is At returning the element's address.
func (b *Buffer[T]) AtPtr(i int) (*T, error) {
	if err := b.checkIndex(i); err != nil {
		return nil, err
	}
	return b.slot(i), nil
}

// Get returns the element at logical index i without a range check. The
// caller guarantees 0 <= i < Len().
func (b *Buffer[T]) Get(i int) T { return *b.slot(i) }

// Ptr returns the address of the element at logical index i without a range
// check. The address is valid until the next reallocation.
func (b *Buffer[T]) Ptr(i int) *T { return b.slot(i) }

// Set overwrites the element at logical index i without a range check.
func (b *Buffer[T]) Set(i int, v T) { *b.slot(i) = v }

// Front returns the first element. The buffer must not be empty.
func (b *Buffer[T]) Front() T { return b.region[b.begin] }

// Back returns the last element. The buffer must not be empty.
func (b *Buffer[T]) Back() T { return b.region[b.absOffset(b.end-1)] }
