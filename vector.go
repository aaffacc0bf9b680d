package seqvec

import (
	"fmt"

	"seqvec/memory"
)

// Vector is a growable sequence of T. Elements at index [0, Len)
// are live; slots beyond that are unused storage. The zero Vector is
// not ready for use; construct with New or NewSize.
type Vector[T any] struct {
	data memory.RawStorage[T]
	size int

	alloc     memory.Allocator[T]
	copyFn    func(T) (T, error)
	moveFn    func(*T) T
	destroyFn func(*T)
	defaultFn func() (T, error)

	stats Stats
}

// Option configures a Vector at construction time.
type Option[T any] func(*Vector[T])

// WithAllocator sets the allocator used for every storage block the
// vector acquires.
func WithAllocator[T any](a memory.Allocator[T]) Option[T] {
	return func(v *Vector[T]) {
		v.alloc = a
	}
}

// WithCopier registers a failable deep copy for T. Registering one
// declares that values of T cannot be duplicated by plain assignment,
// which switches relocation to the transactional copy path: the old
// storage stays intact until every copy has succeeded.
func WithCopier[T any](fn func(T) (T, error)) Option[T] {
	return func(v *Vector[T]) {
		v.copyFn = fn
	}
}

// WithMover registers an ownership transfer for T. A mover cannot
// fail; it must leave the source a zeroed shell. When present it is
// preferred over copying for relocation and tail shifting.
func WithMover[T any](fn func(*T) T) Option[T] {
	return func(v *Vector[T]) {
		v.moveFn = fn
	}
}

// WithDestructor registers a resource release hook run on every live
// value before its slot is vacated or overwritten by a copy.
func WithDestructor[T any](fn func(*T)) Option[T] {
	return func(v *Vector[T]) {
		v.destroyFn = fn
	}
}

// WithDefault registers the constructor used for elements exposed by
// Resize growth and NewSize. Without one, the zero value is used.
func WithDefault[T any](fn func() (T, error)) Option[T] {
	return func(v *Vector[T]) {
		v.defaultFn = fn
	}
}

// New creates an empty vector with zero capacity. No storage is
// allocated until the first growth.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{alloc: memory.HeapAllocator[T]{}}
	for _, o := range opts {
		o(v)
	}
	return v
}

// NewSize creates a vector holding n default-constructed elements at
// exactly capacity n.
func NewSize[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.Resize(n); err != nil {
		v.data.Release()
		return nil, err
	}
	return v, nil
}

// Clone builds an independent copy with capacity equal to Len.
// With a registered copier this can fail; no partially built clone
// ever escapes.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{
		alloc:     v.alloc,
		copyFn:    v.copyFn,
		moveFn:    v.moveFn,
		destroyFn: v.destroyFn,
		defaultFn: v.defaultFn,
	}
	st, err := memory.NewRawStorage(v.alloc, v.size)
	if err != nil {
		return nil, fmt.Errorf("seqvec: clone: %w", err)
	}
	for k := 0; k < v.size; k++ {
		c, err := v.copyOf(*v.data.At(k))
		if err != nil {
			v.destroyIn(&st, 0, k)
			st.Release()
			return nil, fmt.Errorf("seqvec: clone: %w", err)
		}
		*st.At(k) = c
	}
	out.data = st
	out.size = v.size
	return out, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns the address of element i. The index must be below Len;
// this is an unchecked contract, the hot-path accessor performs no
// liveness test of its own.
func (v *Vector[T]) At(i int) *T {
	return v.data.At(i)
}

// Slice returns a view of the live elements for forward traversal.
// The view is valid only until the next mutating operation.
func (v *Vector[T]) Slice() []T {
	return v.data.Slice(0, v.size)
}

// ---------------- Diagnostics ---------------- //

// Stats reports cumulative reallocation work.
type Stats struct {
	Grows       uint64 // storage blocks replaced
	Relocations uint64 // elements moved or copied between blocks
}

// Stats returns the reallocation counters accumulated so far.
func (v *Vector[T]) Stats() Stats {
	return v.stats
}

// ---------------- Element hooks ---------------- //

// copyOf duplicates a value through the registered copier, or by
// assignment when none is registered.
func (v *Vector[T]) copyOf(val T) (T, error) {
	if v.copyFn == nil {
		return val, nil
	}
	return v.copyFn(val)
}

// takeOf transfers a value out of *src, leaving it a zeroed shell.
func (v *Vector[T]) takeOf(src *T) T {
	if v.moveFn != nil {
		return v.moveFn(src)
	}
	out := *src
	var zero T
	*src = zero
	return out
}

// destroyIn tears down the live range [i, j) of st: the destructor
// runs on each value, then the slots are zeroed so the collector
// drops anything they still referenced.
func (v *Vector[T]) destroyIn(st *memory.RawStorage[T], i, j int) {
	if v.destroyFn != nil {
		for k := i; k < j; k++ {
			v.destroyFn(st.At(k))
		}
	}
	clear(st.Slice(i, j))
}

func (v *Vector[T]) destroyRange(i, j int) {
	v.destroyIn(&v.data, i, j)
}
