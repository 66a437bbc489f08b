package ringbuffer

// span is the traversal state shared by every cursor type: the physical
// bounds [front, back) of a region and the current position inside them.
//
// Invariant: front == back implies pos == front, otherwise front <= pos < back.
type span struct {
	front int
	back  int
	pos   int
}

// Front returns the first slot of the traversed range.
func (s span) Front() int { return s.front }

// Back returns one past the last slot of the traversed range.
func (s span) Back() int { return s.back }

// Pos returns the current position.
func (s span) Pos() int { return s.pos }

// Empty reports whether the traversed range holds no slots.
func (s span) Empty() bool { return s.front == s.back }

// Valid checks the cursor invariants. It is a debugging aid; nothing in the
// package relies on it at runtime.
func (s span) Valid() bool {
	if s.back < s.front {
		return false
	}
	if s.Empty() {
		return s.pos == s.front && s.pos == s.back
	}
	return s.front <= s.pos && s.pos < s.back
}

func (s *span) advance() {
	if s.Empty() {
		return
	}
	s.pos++
	if s.pos == s.back {
		s.pos = s.front
	}
}

func (s *span) retreat() {
	if s.Empty() {
		return
	}
	if s.pos == s.front {
		s.pos = s.back
	}
	s.pos--
}

// Cursor walks a region and wraps from its back to its front (and from its
// front to its back when walking backwards). It never owns memory; it stays
// meaningful only while the owning buffer keeps the same region.
type Cursor[T any] struct {
	span
	region []T
}

// NewCursor builds a cursor over region[front:back] positioned at pos. The
// triple is not validated.
func NewCursor[T any](region []T, front, back, pos int) Cursor[T] {
	return Cursor[T]{span: span{front: front, back: back, pos: pos}, region: region}
}

// Value returns the element at the current position.
func (c Cursor[T]) Value() T { return c.region[c.pos] }

// Ptr returns the address of the element at the current position.
func (c Cursor[T]) Ptr() *T { return &c.region[c.pos] }

// Set overwrites the element at the current position.
func (c Cursor[T]) Set(v T) { c.region[c.pos] = v }

// Next steps forward, wrapping at the back, and returns c.
func (c *Cursor[T]) Next() *Cursor[T] {
	c.advance()
	return c
}

// PostNext steps forward and returns the cursor as it was before the step.
func (c *Cursor[T]) PostNext() Cursor[T] {
	old := *c
	c.advance()
	return old
}

// Prev steps backward, wrapping at the front, and returns c.
func (c *Cursor[T]) Prev() *Cursor[T] {
	c.retreat()
	return c
}

// PostPrev steps backward and returns the cursor as it was before the step.
func (c *Cursor[T]) PostPrev() Cursor[T] {
	old := *c
	c.retreat()
	return old
}

// Equal compares current positions only. Cursors over different regions
// compare by position as well; such a comparison carries no meaning.
func (c Cursor[T]) Equal(o Cursor[T]) bool { return c.pos == o.pos }

// ReadOnly narrows c to a read-only cursor with identical bounds and position.
func (c Cursor[T]) ReadOnly() ConstCursor[T] {
	return ConstCursor[T]{span: c.span, region: c.region}
}

// ConstCursor is the read-only counterpart of Cursor.
type ConstCursor[T any] struct {
	span
	region []T
}

// NewConstCursor builds a read-only cursor over region[front:back] positioned at pos.
func NewConstCursor[T any](region []T, front, back, pos int) ConstCursor[T] {
	return ConstCursor[T]{span: span{front: front, back: back, pos: pos}, region: region}
}

// Value returns the element at the current position.
func (c ConstCursor[T]) Value() T { return c.region[c.pos] }

// Next steps forward, wrapping at the back, and returns c.
func (c *ConstCursor[T]) Next() *ConstCursor[T] {
	c.advance()
	return c
}

// PostNext steps forward and returns the cursor as it was before the step.
func (c *ConstCursor[T]) PostNext() ConstCursor[T] {
	old := *c
	c.advance()
	return old
}

// Prev steps backward, wrapping at the front, and returns c.
func (c *ConstCursor[T]) Prev() *ConstCursor[T] {
	c.retreat()
	return c
}

// PostPrev steps backward and returns the cursor as it was before the step.
func (c *ConstCursor[T]) PostPrev() ConstCursor[T] {
	old := *c
	c.retreat()
	return old
}

// Equal compares current positions only.
func (c ConstCursor[T]) Equal(o ConstCursor[T]) bool { return c.pos == o.pos }

// ReverseCursor walks a region backwards. Next retreats and Prev advances;
// Value reads the element under the current position.
type ReverseCursor[T any] struct {
	base Cursor[T]
}

// Base returns the underlying forward cursor.
func (r ReverseCursor[T]) Base() Cursor[T] { return r.base }

// Value returns the element at the current position.
func (r ReverseCursor[T]) Value() T { return r.base.Value() }

// Ptr returns the address of the element at the current position.
func (r ReverseCursor[T]) Ptr() *T { return r.base.Ptr() }

// Set overwrites the element at the current position.
func (r ReverseCursor[T]) Set(v T) { r.base.Set(v) }

// Next moves one element towards the front and returns r.
func (r *ReverseCursor[T]) Next() *ReverseCursor[T] {
	r.base.retreat()
	return r
}

// Prev moves one element towards the back and returns r.
func (r *ReverseCursor[T]) Prev() *ReverseCursor[T] {
	r.base.advance()
	return r
}

// PostNext moves towards the front and returns r as it was before the step.
func (r *ReverseCursor[T]) PostNext() ReverseCursor[T] {
	old := *r
	r.base.retreat()
	return old
}

// PostPrev moves towards the back and returns r as it was before the step.
func (r *ReverseCursor[T]) PostPrev() ReverseCursor[T] {
	old := *r
	r.base.advance()
	return old
}

// Equal compares current positions only.
func (r ReverseCursor[T]) Equal(o ReverseCursor[T]) bool { return r.base.Equal(o.base) }

// ReadOnly narrows r to a read-only reverse cursor.
func (r ReverseCursor[T]) ReadOnly() ConstReverseCursor[T] {
	return ConstReverseCursor[T]{base: r.base.ReadOnly()}
}

// ConstReverseCursor is the read-only counterpart of ReverseCursor.
type ConstReverseCursor[T any] struct {
	base ConstCursor[T]
}

// Base returns the underlying forward cursor.
func (r ConstReverseCursor[T]) Base() ConstCursor[T] { return r.base }

// Value returns the element at the current position.
func (r ConstReverseCursor[T]) Value() T { return r.base.Value() }

// Next moves one element towards the front and returns r.
func (r *ConstReverseCursor[T]) Next() *ConstReverseCursor[T] {
	r.base.retreat()
	return r
}

// Prev moves one element towards the back and returns r.
func (r *ConstReverseCursor[T]) Prev() *ConstReverseCursor[T] {
	r.base.advance()
	return r
}

// PostNext moves towards the front and returns r as it was before the step.
func (r *ConstReverseCursor[T]) PostNext() ConstReverseCursor[T] {
	old := *r
	r.base.retreat()
	return old
}

// PostPrev moves towards the back and returns r as it was before the step.
func (r *ConstReverseCursor[T]) PostPrev() ConstReverseCursor[T] {
	old := *r
	r.base.advance()
	return old
}

// Equal compares current positions only.
func (r ConstReverseCursor[T]) Equal(o ConstReverseCursor[T]) bool { return r.base.Equal(o.base) }
