package ringbuffer

import "github.com/pkg/errors"

// ErrOutOfRange indicates a checked access used a logical index outside
// [0, Len()). The buffer is left untouched.
var ErrOutOfRange = errors.New("ringbuffer: index out of range")

// ErrAllocation indicates the allocator could not provide a region. The
// operation that asked for it has not modified the buffer.
var ErrAllocation = errors.New("ringbuffer: allocation failed")

// ErrLengthExceeded indicates a request for more elements than MaxLen allows.
var ErrLengthExceeded = errors.New("ringbuffer: length exceeds maximum")

// ErrUnsupportedType is returned by allocators that cannot hold the element
// type, e.g. off-heap memory for types containing Go pointers.
var ErrUnsupportedType = errors.New("ringbuffer: unsupported element type")

func outOfRange(index, length int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d, len %d", index, length)
}

func lengthExceeded(want, max int) error {
	return errors.Wrapf(ErrLengthExceeded, "want %d, max %d", want, max)
}
