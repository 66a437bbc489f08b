package ringbuffer

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// MmapAllocator serves regions outside the Go heap from anonymous mmap.
//
// The garbage collector does not scan mmap'd memory, so the element type must
// not hold Go pointers (strings, slices, maps, interfaces, pointers, chans or
// funcs). NewMmapAllocator checks this and returns ErrUnsupportedType.
//
// It never propagates; buffers on different allocators exchange contents
// element by element.
type MmapAllocator[T any] struct {
	mu      sync.Mutex
	regions map[unsafe.Pointer][]byte // data address -> unix.Mmap result
	elem    int
}

var _ Allocator[int64] = (*MmapAllocator[int64])(nil)

// NewMmapAllocator returns an allocator for the pointer-free type T.
func NewMmapAllocator[T any]() (*MmapAllocator[T], error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if !pointerFree(typ) {
		return nil, errors.Wrapf(ErrUnsupportedType, "mmap region cannot hold %s", typ)
	}
	return &MmapAllocator[T]{
		regions: make(map[unsafe.Pointer][]byte),
		elem:    int(typ.Size()),
	}, nil
}

// Allocate maps n*sizeof(T) zeroed anonymous bytes.
func (a *MmapAllocator[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if a.elem == 0 {
		return make([]T, n), nil
	}
	size := n * a.elem
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.WithMessagef(ErrAllocation, "mmap %d bytes: %v", size, err)
	}
	ptr := unsafe.Pointer(&data[0])

	a.mu.Lock()
	a.regions[ptr] = data
	a.mu.Unlock()

	return unsafe.Slice((*T)(ptr), n), nil
}

// Deallocate unmaps region.
func (a *MmapAllocator[T]) Deallocate(region []T) error {
	if len(region) == 0 || a.elem == 0 {
		return nil
	}
	ptr := unsafe.Pointer(&region[0])

	a.mu.Lock()
	data, ok := a.regions[ptr]
	delete(a.regions, ptr)
	a.mu.Unlock()

	if !ok {
		return errors.Errorf("ringbuffer: region %p not mapped by this allocator", ptr)
	}
	if err := unix.Munmap(data); err != nil {
		return errors.Wrapf(err, "munmap %d bytes", len(data))
	}
	return nil
}

// Mapped returns the number of regions still mapped.
func (a *MmapAllocator[T]) Mapped() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.regions)
}

// Close unmaps every region still mapped. Buffers still using one of them must
// not be touched afterwards.
func (a *MmapAllocator[T]) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var firstErr error
	for ptr, data := range a.regions {
		if err := unix.Munmap(data); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "munmap %d bytes", len(data))
		}
		delete(a.regions, ptr)
	}
	return firstErr
}

// Propagation is empty: the allocator never follows the contents.
func (a *MmapAllocator[T]) Propagation() Propagation { return Propagation{} }

// pointerFree reports whether values of type t hold no Go pointers.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
