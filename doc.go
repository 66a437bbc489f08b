// Package ringbuffer provides a growable circular buffer with amortised O(1)
// insertion and removal at both ends, O(1) random access, and insertion at any
// position that shifts only the shorter side of the contents.
//
// One slot of the backing region is always left unused, so begin == end means
// empty and a full buffer is never confused with an empty one. The region
// grows by a factor of 1.5 and comes from a pluggable Allocator; elements
// enter and leave through Lifecycle hooks.
//
// The library is organised into several files for clarity:
//
//	options.go          – configuration struct & defaults
//	cursor.go           – wrap-around cursors over a region
//	allocator.go        – Allocator interface, capabilities & HeapAllocator
//	limit_allocator.go  – allocator with a slot budget
//	pool_allocator.go   – sync.Pool backed regions
//	mmap_allocator.go   – anonymous mmap backed regions
//	lifecycle.go        – element construct/destroy hooks
//	buffer.go           – constructors, copy, move & swap
//	index.go            – offset/index arithmetic
//	access.go           – checked & unchecked element access
//	iterate.go          – cursors & range iterators over the contents
//	capacity.go         – length, capacity, reserve & shrink
//	growth.go           – reallocation & growth policy
//	insert.go, erase.go – positional insertion & removal
//	deque.go            – push/pop at both ends
//	resize.go, assign.go
//	stats.go            – lightweight stats accessors
//
// A Buffer is not safe for concurrent use. Any reallocation invalidates every
// cursor and element address previously obtained from it.
package ringbuffer
