package ringbuffer

import (
	"iter"

	"go.uber.org/zap"
)

// Buffer is a growable circular buffer backed by one contiguous region.
//
// The region always keeps one slot unused so that begin == end means empty;
// Cap is therefore one less than the region size. Elements live in
// [begin, end) modulo the region size.
//
// The zero value is an empty buffer using the heap allocator. A Buffer is not
// safe for concurrent use and must not be copied after first use; use Clone or
// Move instead.
type Buffer[T any] struct {
	alloc Allocator[T]
	life  Lifecycle[T]
	log   *zap.Logger
	stats counters

	region []T
	begin  int
	end    int
}

// New returns an empty buffer with DefaultOptions. Nothing is allocated.
func New[T any]() *Buffer[T] {
	return NewWithOptions(DefaultOptions[T]())
}

// NewWithOptions returns an empty buffer using opts. Nothing is allocated.
func NewWithOptions[T any](opts Options[T]) *Buffer[T] {
	opts = opts.withDefaults()
	return &Buffer[T]{
		alloc: opts.Allocator,
		life:  opts.Lifecycle,
		log:   opts.Logger,
	}
}

// NewWithCapacity returns an empty buffer able to hold capacity elements
// before it has to grow.
func NewWithCapacity[T any](capacity int, opts Options[T]) (*Buffer[T], error) {
	b := NewWithOptions(opts)
	if err := b.Reserve(capacity); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFilled returns a buffer holding count copies of value.
func NewFilled[T any](count int, value T, opts Options[T]) (*Buffer[T], error) {
	b := NewWithOptions(opts)
	if err := b.Assign(count, value); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFromSlice returns a buffer holding copies of values, in order.
func NewFromSlice[T any](values []T, opts Options[T]) (*Buffer[T], error) {
	b := NewWithOptions(opts)
	if err := b.AssignSlice(values); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFromSeq returns a buffer holding the values produced by seq, in order.
// The length is unknown up front, so values are appended one at a time.
func NewFromSeq[T any](seq iter.Seq[T], opts Options[T]) (*Buffer[T], error) {
	b := NewWithOptions(opts)
	if err := b.AssignSeq(seq); err != nil {
		return nil, err
	}
	return b, nil
}

// Of returns a heap-backed buffer holding values.
func Of[T any](values ...T) *Buffer[T] {
	b, err := NewFromSlice(values, DefaultOptions[T]())
	if err != nil {
		// the heap allocator does not fail
		panic(err)
	}
	return b
}

// Clone returns a copy of b. The copy draws memory from the allocator chosen
// by b's allocator SelectOnCopy, which by default is the same allocator.
func (b *Buffer[T]) Clone() (*Buffer[T], error) {
	return b.CloneWith(selectOnCopy(b.allocator()))
}

// CloneWith returns a copy of b whose region comes from alloc. The copy is
// sized to b's length; it has no spare capacity.
func (b *Buffer[T]) CloneWith(alloc Allocator[T]) (*Buffer[T], error) {
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}
	c := &Buffer[T]{alloc: alloc, life: b.life, log: b.log}
	n := b.Len()
	region, err := c.allocFrom(alloc, n)
	if err != nil {
		return nil, err
	}
	c.populate(alloc, region, n, func(dst *T, i int) {
		c.life.copyValue(dst, b.slot(i))
	})
	c.stats.constructed.Add(uint64(n))
	c.region, c.begin, c.end = region, 0, n
	return c, nil
}

// Move transfers b's region and allocator to a new buffer and leaves b empty.
// Cursors into b stay valid for the returned buffer.
func (b *Buffer[T]) Move() *Buffer[T] {
	m := &Buffer[T]{alloc: b.allocator(), life: b.life, log: b.log}
	m.take(b)
	return m
}

// MoveWith transfers b's contents to a new buffer using alloc. If alloc equals
// b's allocator the region itself changes hands; otherwise every element is
// moved into a region from alloc and b's region is released. b is left empty.
func (b *Buffer[T]) MoveWith(alloc Allocator[T]) (*Buffer[T], error) {
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}
	m := &Buffer[T]{alloc: alloc, life: b.life, log: b.log}
	if allocatorsEqual(b.allocator(), alloc) {
		m.take(b)
		return m, nil
	}
	region, err := m.allocFrom(alloc, b.Len())
	if err != nil {
		return nil, err
	}
	m.adoptElements(alloc, region, b)
	return m, nil
}

// Clear destroys every element and releases the region. Cap becomes 0 and
// all cursors are invalidated.
func (b *Buffer[T]) Clear() {
	b.destroyAll()
	b.releaseRegion()
}

// Swap exchanges the contents of b and other.
//
// When both allocators propagate on swap, or they are equal, the regions and
// offsets change hands and no element is touched. Otherwise each buffer keeps
// its allocator and the elements are moved across into fresh regions; both
// regions are allocated before anything moves, so an allocation error leaves
// both buffers as they were.
func (b *Buffer[T]) Swap(other *Buffer[T]) error {
	if b == other {
		return nil
	}
	ab, ao := b.allocator(), other.allocator()
	pb, po := propagationOf(ab), propagationOf(ao)
	switch {
	case pb.OnSwap && po.OnSwap:
		b.alloc, other.alloc = ao, ab
		b.swapRegion(other)
		return nil
	case allocatorsEqual(ab, ao):
		b.swapRegion(other)
		return nil
	}

	nb, no := b.Len(), other.Len()
	forB, err := b.allocFrom(ab, no)
	if err != nil {
		return err
	}
	forOther, err := other.allocFrom(ao, nb)
	if err != nil {
		b.releaseTo(ab, forB)
		return err
	}

	// stage other's elements in a detached buffer so both moves read from
	// untouched sources
	staged := &Buffer[T]{alloc: ab, life: b.life, log: b.log}
	staged.adoptElements(ab, forB, other)
	other.adoptElements(ao, forOther, b)
	b.take(staged)
	b.stats.constructed.Add(uint64(no))
	return nil
}

func (b *Buffer[T]) swapRegion(other *Buffer[T]) {
	b.region, other.region = other.region, b.region
	b.begin, other.begin = other.begin, b.begin
	b.end, other.end = other.end, b.end
}

// take adopts src's region and offsets wholesale and leaves src empty.
func (b *Buffer[T]) take(src *Buffer[T]) {
	b.region, b.begin, b.end = src.region, src.begin, src.end
	src.region, src.begin, src.end = nil, 0, 0
}

// adoptElements moves every element of src into region, which must come from
// alloc and hold at least src.Len()+1 slots, then destroys src's elements and
// releases its region. b's previous contents are destroyed and released once
// the new region is fully populated.
func (b *Buffer[T]) adoptElements(alloc Allocator[T], region []T, src *Buffer[T]) {
	n := src.Len()
	b.populate(alloc, region, n, func(dst *T, i int) {
		b.life.moveValue(dst, src.slot(i))
	})
	b.stats.constructed.Add(uint64(n))
	src.Clear()

	b.destroyAll()
	b.releaseRegion()
	b.alloc = alloc
	b.region, b.begin, b.end = region, 0, n
}

func (b *Buffer[T]) allocator() Allocator[T] {
	if b.alloc == nil {
		b.alloc = HeapAllocator[T]{}
	}
	return b.alloc
}

func (b *Buffer[T]) logger() *zap.Logger {
	if b.log == nil {
		b.log = zap.NewNop()
	}
	return b.log
}

// allocFrom asks alloc for a region holding capacity elements plus the
// sentinel slot. A zero capacity needs no region at all.
func (b *Buffer[T]) allocFrom(alloc Allocator[T], capacity int) ([]T, error) {
	if capacity == 0 {
		return nil, nil
	}
	region, err := alloc.Allocate(capacity + 1)
	if err != nil {
		b.logger().Debug("ring buffer allocation failed",
			zap.Int("capacity", capacity), zap.Error(err))
		return nil, err
	}
	b.stats.allocations.Inc()
	return region, nil
}

func (b *Buffer[T]) releaseTo(alloc Allocator[T], region []T) {
	if region == nil {
		return
	}
	if err := alloc.Deallocate(region); err != nil {
		b.logger().Warn("ring buffer region release failed",
			zap.Int("slots", len(region)), zap.Error(err))
	}
	b.stats.deallocations.Inc()
}

// releaseRegion gives the current region back to the allocator. The buffer
// must hold no elements.
func (b *Buffer[T]) releaseRegion() {
	old := b.region
	b.region, b.begin, b.end = nil, 0, 0
	b.releaseTo(b.allocator(), old)
}

// populate constructs n elements at the start of region through fn. If fn
// panics, the elements built so far are destroyed and region is released
// before the panic continues, leaving the buffer as it was.
func (b *Buffer[T]) populate(alloc Allocator[T], region []T, n int, fn func(dst *T, i int)) {
	done := 0
	defer func() {
		if done == n {
			return
		}
		for i := 0; i < done; i++ {
			b.life.destroyValue(&region[i])
		}
		b.releaseTo(alloc, region)
	}()
	for done < n {
		fn(&region[done], done)
		done++
	}
}

func (b *Buffer[T]) construct(p, src *T) {
	b.life.copyValue(p, src)
	b.stats.constructed.Inc()
}

func (b *Buffer[T]) constructDefault(p *T) {
	b.life.initValue(p)
	b.stats.constructed.Inc()
}

func (b *Buffer[T]) destroy(p *T) {
	b.life.destroyValue(p)
	b.stats.destroyed.Inc()
}

// relocate move-constructs dst from src and destroys src.
func (b *Buffer[T]) relocate(dst, src *T) {
	b.life.moveValue(dst, src)
	b.life.destroyValue(src)
	b.stats.relocations.Inc()
}

// destroyAll destroys the logical range front to back and resets the offsets.
func (b *Buffer[T]) destroyAll() {
	for i, n := 0, b.Len(); i < n; i++ {
		b.destroy(b.slot(i))
	}
	b.begin, b.end = 0, 0
}
