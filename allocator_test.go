package ringbuffer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// tagAllocator serves heap memory and compares equal to allocators carrying
// the same tag.
type tagAllocator struct {
	tag    string
	prop   Propagation
	copyTo Allocator[int]
}

func (a *tagAllocator) Allocate(n int) ([]int, error) { return make([]int, n), nil }
func (a *tagAllocator) Deallocate([]int) error        { return nil }
func (a *tagAllocator) Propagation() Propagation      { return a.prop }

func (a *tagAllocator) EqualAllocator(o Allocator[int]) bool {
	other, ok := o.(*tagAllocator)
	return ok && other.tag == a.tag
}

func (a *tagAllocator) SelectOnCopy() Allocator[int] {
	if a.copyTo != nil {
		return a.copyTo
	}
	return a
}

func fromSlice(t *testing.T, alloc Allocator[int], values ...int) *Buffer[int] {
	t.Helper()
	b, err := NewFromSlice(values, Options[int]{Allocator: alloc})
	require.NoError(t, err)
	return b
}

func TestAllocatorsEqual(t *testing.T) {
	limit := NewLimitAllocator[int](nil, 10)

	assert.True(t, allocatorsEqual[int](HeapAllocator[int]{}, HeapAllocator[int]{}))
	assert.True(t, allocatorsEqual[int](limit, limit))
	assert.False(t, allocatorsEqual[int](limit, NewLimitAllocator[int](nil, 10)))
	assert.False(t, allocatorsEqual[int](HeapAllocator[int]{}, NewPoolAllocator[int]()))
	assert.True(t, allocatorsEqual[int](&tagAllocator{tag: "x"}, &tagAllocator{tag: "x"}))
	assert.False(t, allocatorsEqual[int](&tagAllocator{tag: "x"}, &tagAllocator{tag: "y"}))
}

func TestDefaultCapabilities(t *testing.T) {
	var plain struct{ Allocator[int] }
	assert.Equal(t, Propagation{OnMoveAssign: true, OnSwap: true}, propagationOf[int](plain))
	assert.Equal(t, math.MaxInt/8, maxSizeOf[int64](HeapAllocator[int64]{}))
	assert.Equal(t, math.MaxInt, maxSizeOf[struct{}](HeapAllocator[struct{}]{}))
	assert.Equal(t, 5, maxSizeOf[int](NewLimitAllocator[int](nil, 5)))
}

func TestSwapDegradesWithUnequalAllocators(t *testing.T) {
	aa, ab := &tagAllocator{tag: "a"}, &tagAllocator{tag: "b"}
	x := fromSlice(t, aa, 1, 2, 3)
	y := fromSlice(t, ab, 4, 5)

	require.NoError(t, x.Swap(y))
	assert.Equal(t, []int{4, 5}, x.Slice())
	assert.Equal(t, []int{1, 2, 3}, y.Slice())
	assert.Same(t, aa, x.alloc)
	assert.Same(t, ab, y.alloc)

	for _, b := range []*Buffer[int]{x, y} {
		st := b.Stats()
		assert.EqualValues(t, b.Len(), st.Constructed-st.Destroyed)
	}
}

func TestSwapWithEqualAllocatorsSwapsRegions(t *testing.T) {
	x := fromSlice(t, &tagAllocator{tag: "a"}, 1, 2, 3)
	y := fromSlice(t, &tagAllocator{tag: "a"}, 4, 5)
	px := x.Ptr(0)

	require.NoError(t, x.Swap(y))
	assert.Same(t, px, y.Ptr(0))
	assert.Equal(t, []int{4, 5}, x.Slice())
}

func TestSwapPropagatesAllocators(t *testing.T) {
	aa := &tagAllocator{tag: "a", prop: Propagation{OnSwap: true}}
	ab := &tagAllocator{tag: "b", prop: Propagation{OnSwap: true}}
	x := fromSlice(t, aa, 1)
	y := fromSlice(t, ab, 2)

	require.NoError(t, x.Swap(y))
	assert.Same(t, ab, x.alloc)
	assert.Same(t, aa, y.alloc)
	assert.Equal(t, []int{2}, x.Slice())
}

func TestSwapFailureLeavesBothBuffers(t *testing.T) {
	limit := NewLimitAllocator[int](nil, 4)
	x := fromSlice(t, limit, 1, 2, 3)
	y := fromSlice(t, &tagAllocator{tag: "b"}, 4, 5)

	err := x.Swap(y)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.Equal(t, []int{1, 2, 3}, x.Slice())
	assert.Equal(t, []int{4, 5}, y.Slice())
	assert.Equal(t, 4, limit.InUse())
}

func TestMoveWithUnequalAllocatorMovesElements(t *testing.T) {
	src := fromSlice(t, &tagAllocator{tag: "a"}, 1, 2, 3)
	dst := &tagAllocator{tag: "b"}
	p := src.Ptr(0)

	m, err := src.MoveWith(dst)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, m.Slice())
	assert.NotSame(t, p, m.Ptr(0))
	assert.Same(t, dst, m.alloc)
	assert.True(t, src.Empty())
	assert.Equal(t, 0, src.Cap())
}

func TestMoveWithEqualAllocatorStealsRegion(t *testing.T) {
	src := fromSlice(t, &tagAllocator{tag: "a"}, 1, 2, 3)
	p := src.Ptr(0)

	m, err := src.MoveWith(&tagAllocator{tag: "a"})
	require.NoError(t, err)
	assert.Same(t, p, m.Ptr(0))
	assert.True(t, src.Empty())
}

func TestMoveFromKeepsOwnAllocatorWhenNotPropagating(t *testing.T) {
	ab := &tagAllocator{tag: "b"}
	dst := fromSlice(t, ab, 9)
	src := fromSlice(t, &tagAllocator{tag: "a"}, 1, 2)

	require.NoError(t, dst.MoveFrom(src))
	assert.Equal(t, []int{1, 2}, dst.Slice())
	assert.Same(t, ab, dst.alloc)
	assert.True(t, src.Empty())
}

func TestMoveFromAdoptsPropagatingAllocator(t *testing.T) {
	aa := &tagAllocator{tag: "a", prop: Propagation{OnMoveAssign: true}}
	dst := fromSlice(t, &tagAllocator{tag: "b"}, 9)
	src := fromSlice(t, aa, 1, 2)
	p := src.Ptr(0)

	require.NoError(t, dst.MoveFrom(src))
	assert.Same(t, aa, dst.alloc)
	assert.Same(t, p, dst.Ptr(0))
}

func TestCopyFromPropagation(t *testing.T) {
	ab := &tagAllocator{tag: "b"}
	propagating := &tagAllocator{tag: "a", prop: Propagation{OnCopyAssign: true}}

	dst := fromSlice(t, ab, 9)
	require.NoError(t, dst.CopyFrom(fromSlice(t, propagating, 1, 2)))
	assert.Same(t, propagating, dst.alloc)
	assert.Equal(t, []int{1, 2}, dst.Slice())

	dst = fromSlice(t, ab, 9)
	require.NoError(t, dst.CopyFrom(fromSlice(t, &tagAllocator{tag: "a"}, 1, 2)))
	assert.Same(t, ab, dst.alloc)
	assert.Equal(t, []int{1, 2}, dst.Slice())
}

func TestCloneUsesSelectOnCopy(t *testing.T) {
	other := &tagAllocator{tag: "copy"}
	src := fromSlice(t, &tagAllocator{tag: "a", copyTo: other}, 1, 2)

	c, err := src.Clone()
	require.NoError(t, err)
	assert.Same(t, other, c.alloc)
	assert.Equal(t, []int{1, 2}, c.Slice())
}

func TestLimitAllocatorFailureLeavesBufferUnchanged(t *testing.T) {
	limit := NewLimitAllocator[int](nil, 6)
	b, err := NewWithCapacity(3, Options[int]{Allocator: limit})
	require.NoError(t, err)
	pushAll(t, b, 1, 2, 3)

	_, err = b.PushBack(4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAllocation))
	assert.Equal(t, []int{1, 2, 3}, b.Slice())
	assert.Equal(t, 3, b.Cap())
	assert.Equal(t, 4, limit.InUse())

	_, err = b.InsertAt(1, 9)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.Equal(t, []int{1, 2, 3}, b.Slice())

	assert.ErrorIs(t, b.Assign(5, 0), ErrAllocation)
	assert.Equal(t, []int{1, 2, 3}, b.Slice())

	b.Clear()
	assert.Zero(t, limit.InUse())
}

func TestPoolAllocatorRecyclesClearedRegions(t *testing.T) {
	a := NewPoolAllocator[int]()

	r, err := a.Allocate(4)
	require.NoError(t, err)
	require.Len(t, r, 4)
	r[0] = 5
	require.NoError(t, a.Deallocate(r))

	r, err = a.Allocate(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, r)

	b := NewWithOptions(Options[int]{Allocator: a})
	for i := 0; i < 50; i++ {
		pushAll(t, b, i)
	}
	for i := 0; i < 45; i++ {
		b.PopFront()
	}
	require.NoError(t, b.ShrinkToFit())
	assert.Equal(t, []int{45, 46, 47, 48, 49}, b.Slice())
	b.Clear()
}

func TestMmapAllocatorBacksBuffer(t *testing.T) {
	a, err := NewMmapAllocator[int64]()
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Close()) }()

	b := NewWithOptions(Options[int64]{Allocator: a})
	for i := int64(0); i < 100; i++ {
		_, err := b.PushBack(i)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, a.Mapped(), "old regions are unmapped on growth")
	assert.EqualValues(t, 99, b.Back())

	b.Clear()
	assert.Zero(t, a.Mapped())
	assert.Error(t, a.Deallocate(make([]int64, 4)))
}

func TestMmapAllocatorRejectsPointerTypes(t *testing.T) {
	_, err := NewMmapAllocator[string]()
	assert.ErrorIs(t, err, ErrUnsupportedType)
	_, err = NewMmapAllocator[*int]()
	assert.ErrorIs(t, err, ErrUnsupportedType)
	_, err = NewMmapAllocator[struct{ p []byte }]()
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = NewMmapAllocator[struct {
		a int32
		b [4]uint8
	}]()
	assert.NoError(t, err)
}

type failingRelease struct{ HeapAllocator[int] }

func (failingRelease) Deallocate([]int) error { return errors.New("release refused") }

func TestBufferLogsRegionEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := NewWithOptions(Options[int]{Allocator: failingRelease{}, Logger: zap.New(core)})

	pushAll(t, b, 1, 2)
	grown := logs.FilterMessage("ring buffer reallocated").All()
	require.NotEmpty(t, grown)
	last := grown[len(grown)-1].ContextMap()
	assert.EqualValues(t, 1, last["old_capacity"])
	assert.EqualValues(t, 3, last["new_capacity"])
	assert.EqualValues(t, 1, last["len"])

	b.Clear()
	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.NotEmpty(t, warns)
	assert.Equal(t, "ring buffer region release failed", warns[0].Message)
}

func TestReserveMaxLenReturnsAllocationError(t *testing.T) {
	for name, alloc := range map[string]Allocator[int]{
		"heap": HeapAllocator[int]{},
		"pool": NewPoolAllocator[int](),
	} {
		t.Run(name, func(t *testing.T) {
			b := fromSlice(t, alloc, 1, 2, 3)

			err := b.Reserve(b.MaxLen())
			assert.ErrorIs(t, err, ErrAllocation)
			assert.Equal(t, 3, b.Len())
			assert.Equal(t, 3, b.Cap())
			assert.Equal(t, []int{1, 2, 3}, b.Slice())
		})
	}
}
