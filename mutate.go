package seqvec

import (
	"fmt"

	"seqvec/memory"
)

// PushBack appends a copy of val, growing storage if needed.
func (v *Vector[T]) PushBack(val T) error {
	_, err := v.Emplace(v.size, func() (T, error) { return v.copyOf(val) })
	return err
}

// PushBackMove appends by taking ownership of *val, which is left a
// zeroed shell. Only allocation can fail.
func (v *Vector[T]) PushBackMove(val *T) error {
	_, err := v.Emplace(v.size, func() (T, error) { return v.takeOf(val), nil })
	return err
}

// EmplaceBack appends an element built in place by ctor and returns
// its address.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	return v.Emplace(v.size, ctor)
}

// PopBack destroys the last element. Panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("seqvec: pop on empty vector")
	}
	v.destroyRange(v.size-1, v.size)
	v.size--
}

// Insert places a copy of val at position i, shifting the tail right.
// i may equal Len, meaning append. The copy is taken before any slot
// moves, so inserting a value read out of this same vector is safe.
func (v *Vector[T]) Insert(i int, val T) (*T, error) {
	return v.Emplace(i, func() (T, error) { return v.copyOf(val) })
}

// InsertMove places *val at position i by ownership transfer, leaving
// *val a zeroed shell.
func (v *Vector[T]) InsertMove(i int, val *T) (*T, error) {
	return v.Emplace(i, func() (T, error) { return v.takeOf(val), nil })
}

// Emplace constructs an element via ctor at position i in [0, Len]
// and returns its address.
//
// At capacity, fresh storage is allocated and the new element is
// constructed into its final slot there before anything relocates, so
// a ctor failure leaves the vector untouched. With capacity to spare,
// the element is constructed off to the side first and the tail
// shifts one slot right to make room; the shift itself cannot fail.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (*T, error) {
	if i < 0 || i > v.size {
		panic("seqvec: emplace position out of range")
	}
	if v.size == v.data.Cap() {
		return v.emplaceGrow(i, ctor)
	}
	tmp, err := ctor()
	if err != nil {
		return nil, fmt.Errorf("seqvec: emplace: %w", err)
	}
	v.shiftRight(i)
	*v.data.At(i) = tmp
	v.size++
	return v.data.At(i), nil
}

// emplaceGrow handles Emplace when every slot is live: new block,
// new element first, then prefix and suffix relocation around it.
func (v *Vector[T]) emplaceGrow(i int, ctor func() (T, error)) (*T, error) {
	fresh, err := memory.NewRawStorage(v.alloc, grownCapacity(v.data.Cap()))
	if err != nil {
		return nil, fmt.Errorf("seqvec: grow: %w", err)
	}
	val, err := ctor()
	if err != nil {
		fresh.Release()
		return nil, fmt.Errorf("seqvec: emplace: %w", err)
	}
	*fresh.At(i) = val
	if err := v.relocateInto(&fresh, 0, i, 0); err != nil {
		v.destroyIn(&fresh, i, i+1)
		fresh.Release()
		return nil, err
	}
	if err := v.relocateInto(&fresh, i, v.size, i+1); err != nil {
		v.destroyIn(&fresh, 0, i+1)
		fresh.Release()
		return nil, err
	}
	v.retireOld(&fresh)
	v.size++
	return v.data.At(i), nil
}

// Erase removes the element at position i in [0, Len), shifting the
// tail left. Returns the address of the element now occupying i, or
// nil when the erased element was last.
func (v *Vector[T]) Erase(i int) *T {
	if i < 0 || i >= v.size {
		panic("seqvec: erase position out of range")
	}
	if v.destroyFn != nil {
		v.destroyFn(v.data.At(i))
	}
	v.shiftLeft(i)
	clear(v.data.Slice(v.size-1, v.size))
	v.size--
	if i == v.size {
		return nil
	}
	return v.data.At(i)
}

// ---------------- Tail shifting ---------------- //

// shiftRight moves the live range [i, size) one slot toward the end.
// Requires a free slot at index size. Slot i is left holding a stale
// duplicate the caller must overwrite.
func (v *Vector[T]) shiftRight(i int) {
	if v.moveFn != nil {
		for k := v.size; k > i; k-- {
			*v.data.At(k) = v.moveFn(v.data.At(k - 1))
		}
		return
	}
	copy(v.data.Slice(i+1, v.size+1), v.data.Slice(i, v.size))
}

// shiftLeft moves the live range (i, size) one slot toward the front,
// overwriting slot i. The now-stale last slot is the caller's to clear.
func (v *Vector[T]) shiftLeft(i int) {
	if v.moveFn != nil {
		for k := i; k < v.size-1; k++ {
			*v.data.At(k) = v.moveFn(v.data.At(k + 1))
		}
		return
	}
	copy(v.data.Slice(i, v.size-1), v.data.Slice(i+1, v.size))
}
