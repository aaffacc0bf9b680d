package memory

// RawStorage owns one contiguous block of element slots obtained from
// an Allocator. Every slot is either unused or holds a value the
// caller placed there; RawStorage itself never knows which, so the
// caller must tear down live values before calling Release.
type RawStorage[T any] struct {
	slots []T
	alloc Allocator[T]
}

// NewRawStorage allocates a block of exactly capacity slots.
// A zero capacity yields an empty handle without touching the
// allocator. A nil allocator defaults to the heap.
func NewRawStorage[T any](alloc Allocator[T], capacity int) (RawStorage[T], error) {
	if capacity < 0 {
		panic("memory: negative capacity")
	}
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}
	if capacity == 0 {
		return RawStorage[T]{alloc: alloc}, nil
	}
	block, err := alloc.Alloc(capacity)
	if err != nil {
		return RawStorage[T]{}, err
	}
	return RawStorage[T]{slots: block, alloc: alloc}, nil
}

// Cap returns the number of slots in the block.
func (s *RawStorage[T]) Cap() int {
	return len(s.slots)
}

// At returns the address of slot i, valid for i in [0, Cap).
func (s *RawStorage[T]) At(i int) *T {
	return &s.slots[i]
}

// Slice returns the slot range [i, j). j may equal Cap, so the
// one-past-end boundary is addressable for bulk operations.
func (s *RawStorage[T]) Slice(i, j int) []T {
	return s.slots[i:j]
}

// Swap exchanges the blocks of two storages in constant time.
// No slot is touched; each block keeps the allocator it came from.
func (s *RawStorage[T]) Swap(other *RawStorage[T]) {
	s.slots, other.slots = other.slots, s.slots
	s.alloc, other.alloc = other.alloc, s.alloc
}

// Release returns the block to its allocator and empties the handle.
// A no-op on an empty handle. The caller must have torn down any live
// values first.
func (s *RawStorage[T]) Release() {
	if s.slots == nil {
		return
	}
	s.alloc.Free(s.slots)
	s.slots = nil
}
