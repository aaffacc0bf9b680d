package seqvec

import (
	"fmt"

	"seqvec/memory"
)

// grownCapacity doubles the current capacity, which amortizes
// relocation cost to constant per append.
func grownCapacity(cur int) int {
	if cur == 0 {
		return 1
	}
	return cur * 2
}

// relocateInto places the live range [from, to) of the current block
// into dst starting at slot at.
//
// With a mover, or with neither mover nor copier, relocation cannot
// fail: values transfer by move or plain assignment. With only a
// copier, each element is copied and a failure tears down the copies
// made so far, leaving the source range untouched.
func (v *Vector[T]) relocateInto(dst *memory.RawStorage[T], from, to, at int) error {
	n := to - from
	switch {
	case v.moveFn != nil:
		for k := 0; k < n; k++ {
			*dst.At(at+k) = v.moveFn(v.data.At(from + k))
		}
	case v.copyFn != nil:
		for k := 0; k < n; k++ {
			c, err := v.copyFn(*v.data.At(from + k))
			if err != nil {
				v.destroyIn(dst, at, at+k)
				return fmt.Errorf("seqvec: relocate: %w", err)
			}
			*dst.At(at + k) = c
		}
	default:
		copy(dst.Slice(at, at+n), v.data.Slice(from, to))
	}
	v.stats.Relocations += uint64(n)
	return nil
}

// retireOld finishes a reallocation: the old live range is torn down,
// the freshly populated block is swapped into place, and the old
// block goes back to its allocator.
func (v *Vector[T]) retireOld(fresh *memory.RawStorage[T]) {
	if v.moveFn == nil && v.copyFn != nil {
		// copy relocation left the originals live
		v.destroyRange(0, v.size)
	} else {
		// values moved out; only stale references remain
		clear(v.data.Slice(0, v.size))
	}
	v.data.Swap(fresh)
	fresh.Release()
	v.stats.Grows++
}

// Reserve grows capacity to exactly n, relocating the live elements.
// A no-op when n does not exceed the current capacity. On failure the
// vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	fresh, err := memory.NewRawStorage(v.alloc, n)
	if err != nil {
		return fmt.Errorf("seqvec: reserve: %w", err)
	}
	if err := v.relocateInto(&fresh, 0, v.size, 0); err != nil {
		fresh.Release()
		return err
	}
	v.retireOld(&fresh)
	return nil
}

// Resize sets the live count to n, default-constructing newly exposed
// elements or destroying excess ones. Capacity never shrinks. If a
// default constructor fails partway, the elements it did produce are
// destroyed and the size is unchanged, though capacity may already
// have grown.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		panic("seqvec: negative size")
	case n > v.size:
		if n > v.data.Cap() {
			if err := v.Reserve(n); err != nil {
				return err
			}
		}
		for k := v.size; k < n; k++ {
			val, err := v.defaultVal()
			if err != nil {
				v.destroyRange(v.size, k)
				return fmt.Errorf("seqvec: resize: %w", err)
			}
			*v.data.At(k) = val
		}
		v.size = n
	case n < v.size:
		v.destroyRange(n, v.size)
		v.size = n
	}
	return nil
}

func (v *Vector[T]) defaultVal() (T, error) {
	if v.defaultFn == nil {
		var zero T
		return zero, nil
	}
	return v.defaultFn()
}
