package seqvec

import (
	"fmt"

	"seqvec/memory"
)

// Assign replaces this vector's contents with copies of src's.
//
// When src does not fit the current capacity, an entirely new block is
// populated first and swapped in, so a failed copy leaves the target
// unchanged. Within capacity, the overlapping prefix is copy-assigned
// in place and the tail constructed or destroyed to match; a failure
// there may leave a partially updated prefix, but every element stays
// valid and the size is untouched.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src.size > v.data.Cap() {
		return v.assignRebuild(src)
	}

	n := min(v.size, src.size)
	for k := 0; k < n; k++ {
		c, err := v.copyOf(*src.data.At(k))
		if err != nil {
			return fmt.Errorf("seqvec: assign: %w", err)
		}
		if v.destroyFn != nil {
			v.destroyFn(v.data.At(k))
		}
		*v.data.At(k) = c
	}
	if src.size > v.size {
		for k := v.size; k < src.size; k++ {
			c, err := v.copyOf(*src.data.At(k))
			if err != nil {
				v.destroyRange(v.size, k)
				return fmt.Errorf("seqvec: assign: %w", err)
			}
			*v.data.At(k) = c
		}
	} else {
		v.destroyRange(src.size, v.size)
	}
	v.size = src.size
	return nil
}

// assignRebuild builds the full copy in fresh storage before touching
// the current contents.
func (v *Vector[T]) assignRebuild(src *Vector[T]) error {
	fresh, err := memory.NewRawStorage(v.alloc, src.size)
	if err != nil {
		return fmt.Errorf("seqvec: assign: %w", err)
	}
	for k := 0; k < src.size; k++ {
		c, err := v.copyOf(*src.data.At(k))
		if err != nil {
			v.destroyIn(&fresh, 0, k)
			fresh.Release()
			return fmt.Errorf("seqvec: assign: %w", err)
		}
		*fresh.At(k) = c
	}
	v.destroyRange(0, v.size)
	v.data.Swap(&fresh)
	fresh.Release()
	v.size = src.size
	return nil
}

// MoveFrom discards this vector's contents and takes over src's
// storage and elements. src is left valid and empty with zero size.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.destroyRange(0, v.size)
	v.data.Swap(&src.data)
	src.data.Release() // the old block, already torn down
	v.size = src.size
	src.size = 0
}

// Swap exchanges contents of two vectors in constant time. Both must
// have been configured with the same element hooks.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Clear destroys every live element and keeps the capacity.
func (v *Vector[T]) Clear() {
	v.destroyRange(0, v.size)
	v.size = 0
}
