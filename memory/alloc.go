package memory

import (
	"errors"
	"fmt"
)

// ErrBudget signals that a BudgetAllocator has no slots left.
var ErrBudget = errors.New("memory: allocation budget exhausted")

// Allocator hands out blocks of element slots and reclaims them.
// Alloc either returns a block of exactly n slots or fails without
// side effects; it never partially succeeds.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Free(block []T)
}

// HeapAllocator allocates from the Go heap. It never fails; Free is
// a no-op because the collector reclaims unreferenced blocks.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Alloc(n int) ([]T, error) {
	return make([]T, n), nil
}

func (HeapAllocator[T]) Free([]T) {}

// BudgetAllocator caps the total number of slots outstanding.
// Alloc fails with ErrBudget once the cap is reached and Free returns
// slots to the budget. Not safe for concurrent use.
type BudgetAllocator[T any] struct {
	remaining int
}

// NewBudgetAllocator creates an allocator with a fixed slot budget.
func NewBudgetAllocator[T any](slots int) *BudgetAllocator[T] {
	if slots < 0 {
		panic("memory: negative allocation budget")
	}
	return &BudgetAllocator[T]{remaining: slots}
}

func (a *BudgetAllocator[T]) Alloc(n int) ([]T, error) {
	if n > a.remaining {
		return nil, fmt.Errorf("memory: alloc %d of %d slots: %w", n, a.remaining, ErrBudget)
	}
	a.remaining -= n
	return make([]T, n), nil
}

func (a *BudgetAllocator[T]) Free(block []T) {
	a.remaining += len(block)
}

// Remaining reports how many slots the budget can still provide.
func (a *BudgetAllocator[T]) Remaining() int {
	return a.remaining
}
