package ringbuffer

import "go.uber.org/atomic"

// Stats is a snapshot of a Buffer's activity counters.
//
// Constructed and Destroyed count the elements this buffer created and
// destroyed. Regions handed over whole by Move or Swap are not counted.
type Stats struct {
	Allocations   uint64 // regions obtained from the allocator
	Deallocations uint64 // regions given back to the allocator
	Reallocations uint64 // grow/shrink steps that replaced a region
	Relocations   uint64 // elements moved by growth, insert or erase
	Constructed   uint64
	Destroyed     uint64
}

// counters are atomic so a monitoring goroutine can call Stats while the
// single owner mutates the buffer.
type counters struct {
	allocations   atomic.Uint64
	deallocations atomic.Uint64
	reallocations atomic.Uint64
	relocations   atomic.Uint64
	constructed   atomic.Uint64
	destroyed     atomic.Uint64
}

// Stats returns a snapshot of the counters.
func (b *Buffer[T]) Stats() Stats {
	return Stats{
		Allocations:   b.stats.allocations.Load(),
		Deallocations: b.stats.deallocations.Load(),
		Reallocations: b.stats.reallocations.Load(),
		Relocations:   b.stats.relocations.Load(),
		Constructed:   b.stats.constructed.Load(),
		Destroyed:     b.stats.destroyed.Load(),
	}
}

// ResetStats zeroes every counter.
func (b *Buffer[T]) ResetStats() {
	b.stats.allocations.Store(0)
	b.stats.deallocations.Store(0)
	b.stats.reallocations.Store(0)
	b.stats.relocations.Store(0)
	b.stats.constructed.Store(0)
	b.stats.destroyed.Store(0)
}

// merge adds the counters of a staging buffer.
func (c *counters) merge(o *counters) {
	c.allocations.Add(o.allocations.Load())
	c.deallocations.Add(o.deallocations.Load())
	c.reallocations.Add(o.reallocations.Load())
	c.relocations.Add(o.relocations.Load())
	c.constructed.Add(o.constructed.Load())
	c.destroyed.Add(o.destroyed.Load())
}
