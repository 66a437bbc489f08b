package ringbuffer

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pushAll appends values one at a time.
func pushAll[T any](t *testing.T, b *Buffer[T], values ...T) {
	t.Helper()
	for _, v := range values {
		_, err := b.PushBack(v)
		require.NoError(t, err)
	}
}

// newWrapped returns a buffer of capacity 3 holding [3 4 5] with the last two
// elements stored below the first one.
func newWrapped(t *testing.T) *Buffer[int] {
	t.Helper()
	b, err := NewWithCapacity(3, DefaultOptions[int]())
	require.NoError(t, err)
	pushAll(t, b, 1, 2, 3)
	b.PopFront()
	b.PopFront()
	pushAll(t, b, 4, 5)
	require.Less(t, b.end, b.begin, "contents should wrap")
	return b
}

func TestNewIsEmptyAndUnallocated(t *testing.T) {
	b := New[int]()
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap())
	assert.Zero(t, b.Stats().Allocations)

	var zero Buffer[int]
	pushAll(t, &zero, 1)
	assert.Equal(t, []int{1}, zero.Slice())
}

func TestPopFrontThenInsert(t *testing.T) {
	b := Of(0, 1, 2)

	assert.Equal(t, 0, b.PopFront())
	it, err := b.Insert(b.CursorAt(1).ReadOnly(), 9)
	require.NoError(t, err)

	assert.Equal(t, 9, it.Value())
	assert.Equal(t, []int{1, 9, 2}, b.Slice())
}

func TestFourthPushGrows(t *testing.T) {
	b, err := NewWithCapacity(3, DefaultOptions[int]())
	require.NoError(t, err)
	pushAll(t, b, 0, 1, 2)
	require.Equal(t, 3, b.Cap())

	pushAll(t, b, 3)
	assert.Equal(t, 6, b.Cap())
	assert.Equal(t, []int{0, 1, 2, 3}, b.Slice())

	st := b.Stats()
	assert.EqualValues(t, 1, st.Reallocations)
	assert.EqualValues(t, 2, st.Allocations)
	assert.EqualValues(t, 1, st.Deallocations)
}

func TestGrowthFactor(t *testing.T) {
	b := New[int]()
	var caps []int
	for i := 0; i < 12; i++ {
		before := b.Cap()
		pushAll(t, b, i)
		if b.Cap() != before {
			caps = append(caps, b.Cap())
		}
	}
	assert.Equal(t, []int{1, 3, 6, 10, 16}, caps)
}

func TestWrapAroundWithoutGrowth(t *testing.T) {
	b := newWrapped(t)

	assert.Equal(t, []int{3, 4, 5}, b.Slice())
	assert.Equal(t, 3, b.Cap())
	assert.Zero(t, b.Stats().Reallocations)
	assert.Equal(t, 3, b.Front())
	assert.Equal(t, 5, b.Back())
}

func TestAtChecksRange(t *testing.T) {
	b := newWrapped(t)

	v, err := b.At(2)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	for _, i := range []int{-1, 3, 100} {
		_, err := b.At(i)
		assert.True(t, errors.Is(err, ErrOutOfRange), "index %d", i)
		_, err = b.AtPtr(i)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}

	p, err := b.AtPtr(1)
	require.NoError(t, err)
	*p = 40
	assert.Equal(t, 40, b.Get(1))
	b.Set(1, 41)
	assert.Equal(t, 41, *b.Ptr(1))
}

func TestForwardCursorWalk(t *testing.T) {
	b := newWrapped(t)

	var got []int
	for c := b.Begin(); !c.Equal(b.End()); c.Next() {
		got = append(got, c.Value())
	}
	assert.Equal(t, []int{3, 4, 5}, got)

	var cgot []int
	for c := b.CBegin(); !c.Equal(b.CEnd()); c.Next() {
		cgot = append(cgot, c.Value())
	}
	assert.Equal(t, got, cgot)
}

func TestRangeIterators(t *testing.T) {
	b := newWrapped(t)

	var idx []int
	for i, v := range b.All() {
		idx = append(idx, i)
		assert.Equal(t, b.Get(i), v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)

	var back []int
	for _, v := range b.Backward() {
		back = append(back, v)
	}
	assert.Equal(t, []int{5, 4, 3}, back)

	var first []int
	for v := range b.Values() {
		first = append(first, v)
		break
	}
	assert.Equal(t, []int{3}, first)
}

func TestReserveIsExact(t *testing.T) {
	b := Of(1, 2)
	require.NoError(t, b.Reserve(10))
	assert.Equal(t, 10, b.Cap())

	require.NoError(t, b.Reserve(5))
	assert.Equal(t, 10, b.Cap())
	assert.Equal(t, []int{1, 2}, b.Slice())
}

func TestReserveAboveMaxLen(t *testing.T) {
	b := NewWithOptions(Options[int]{Allocator: NewLimitAllocator[int](nil, 8)})
	assert.Equal(t, 7, b.MaxLen())

	err := b.Reserve(8)
	assert.ErrorIs(t, err, ErrLengthExceeded)
	assert.Equal(t, 0, b.Cap())
}

func TestShrinkToFit(t *testing.T) {
	b := newWrapped(t)
	require.NoError(t, b.Reserve(10))

	require.NoError(t, b.ShrinkToFit())
	assert.Equal(t, 3, b.Cap())
	assert.Equal(t, []int{3, 4, 5}, b.Slice())

	e := New[int]()
	require.NoError(t, e.Reserve(5))
	require.NoError(t, e.ShrinkToFit())
	assert.Equal(t, 0, e.Cap())
	assert.EqualValues(t, 1, e.Stats().Deallocations)
}

func TestClearReleasesRegion(t *testing.T) {
	b := Of(1, 2, 3)
	b.Clear()

	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Cap())
	assert.EqualValues(t, 1, b.Stats().Deallocations)

	pushAll(t, b, 7)
	assert.Equal(t, []int{7}, b.Slice())
}

func TestCloneIsIndependent(t *testing.T) {
	b := newWrapped(t)

	c, err := b.Clone()
	require.NoError(t, err)
	assert.Equal(t, b.Slice(), c.Slice())
	assert.Equal(t, 3, c.Cap())

	c.Set(0, 99)
	assert.Equal(t, 3, b.Front())
}

func TestCloneOfEmpty(t *testing.T) {
	c, err := New[int]().Clone()
	require.NoError(t, err)
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Cap())
}

func TestMoveKeepsAddresses(t *testing.T) {
	b := Of(1, 2, 3)
	p := b.Ptr(0)

	m := b.Move()
	assert.Same(t, p, m.Ptr(0))
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Cap())
	assert.Equal(t, []int{1, 2, 3}, m.Slice())
}

func TestSwapExchangesContents(t *testing.T) {
	a := Of(1, 2)
	b := newWrapped(t)
	pa := a.Ptr(0)

	require.NoError(t, a.Swap(b))
	assert.Equal(t, []int{3, 4, 5}, a.Slice())
	assert.Equal(t, []int{1, 2}, b.Slice())
	assert.Same(t, pa, b.Ptr(0))

	require.NoError(t, a.Swap(a))
	assert.Equal(t, []int{3, 4, 5}, a.Slice())
}

func TestAssignVariants(t *testing.T) {
	b := New[int]()

	require.NoError(t, b.Assign(3, 7))
	assert.Equal(t, []int{7, 7, 7}, b.Slice())
	assert.Equal(t, 3, b.Cap())

	require.NoError(t, b.AssignValues(1, 2))
	assert.Equal(t, []int{1, 2}, b.Slice())
	assert.Equal(t, 3, b.Cap(), "shrinking assignment keeps the region")

	require.NoError(t, b.AssignSeq(slices.Values([]int{4, 5, 6, 7, 8})))
	assert.Equal(t, []int{4, 5, 6, 7, 8}, b.Slice())

	require.NoError(t, b.AssignSlice(nil))
	assert.True(t, b.Empty())
}

func TestConstructors(t *testing.T) {
	f, err := NewFilled(4, "x", DefaultOptions[string]())
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x", "x", "x"}, f.Slice())

	s, err := NewFromSeq(slices.Values([]int{1, 2, 3}), DefaultOptions[int]())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, s.Slice())

	c, err := NewWithCapacity(5, DefaultOptions[int]())
	require.NoError(t, err)
	assert.True(t, c.Empty())
	assert.Equal(t, 5, c.Cap())
}

func TestCopyFromAndMoveFrom(t *testing.T) {
	src := newWrapped(t)
	dst := Of(9, 9, 9, 9, 9)

	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, []int{3, 4, 5}, dst.Slice())
	assert.Equal(t, []int{3, 4, 5}, src.Slice())

	other := Of(6, 7)
	p := other.Ptr(0)
	require.NoError(t, dst.MoveFrom(other))
	assert.Equal(t, []int{6, 7}, dst.Slice())
	assert.Same(t, p, dst.Ptr(0))
	assert.True(t, other.Empty())
}

func TestResize(t *testing.T) {
	b := Of(1, 2, 3)

	require.NoError(t, b.Resize(5))
	assert.Equal(t, []int{1, 2, 3, 0, 0}, b.Slice())

	require.NoError(t, b.ResizeWith(6, 9))
	assert.Equal(t, []int{1, 2, 3, 0, 0, 9}, b.Slice())

	require.NoError(t, b.Resize(2))
	assert.Equal(t, []int{1, 2}, b.Slice())

	assert.ErrorIs(t, b.Resize(-1), ErrOutOfRange)
}

func TestResizeRunsInitHook(t *testing.T) {
	b := NewWithOptions(Options[int]{Lifecycle: Lifecycle[int]{
		Init: func(p *int) { *p = -1 },
	}})
	require.NoError(t, b.Resize(3))
	assert.Equal(t, []int{-1, -1, -1}, b.Slice())
}

func TestResetStats(t *testing.T) {
	b := Of(1, 2, 3)
	require.NotZero(t, b.Stats().Allocations)

	b.ResetStats()
	assert.Equal(t, Stats{}, b.Stats())

	pushAll(t, b, 4)
	st := b.Stats()
	assert.EqualValues(t, 1, st.Constructed)
	assert.EqualValues(t, 1, st.Reallocations)
	assert.EqualValues(t, 3, st.Relocations)
}
