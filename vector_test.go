package seqvec

import (
	"testing"

	"golang.org/x/exp/slices"
)

func intVec(t *testing.T, vals ...int) *Vector[int] {
	t.Helper()
	v := New[int]()
	for _, x := range vals {
		if err := v.PushBack(x); err != nil {
			t.Fatalf("push %d failed: %v", x, err)
		}
	}
	return v
}

func TestPushBackOrderAndAmortizedGrowth(t *testing.T) {
	const n = 1000
	v := New[int]()
	for i := 0; i < n; i++ {
		if err := v.PushBack(i); err != nil {
			t.Fatalf("push %d failed: %v", i, err)
		}
	}
	if v.Len() != n {
		t.Fatalf("len = %d, want %d", v.Len(), n)
	}
	if v.Cap() < n {
		t.Errorf("cap = %d, want >= %d", v.Cap(), n)
	}
	for i := 0; i < n; i++ {
		if *v.At(i) != i {
			t.Fatalf("element %d = %d, want %d", i, *v.At(i), i)
		}
	}
	// doubling keeps total relocation work linear
	if reloc := v.Stats().Relocations; reloc > 2*n {
		t.Errorf("relocations = %d, want <= %d", reloc, 2*n)
	}
}

func TestScenarioInsertEraseWalkThrough(t *testing.T) {
	v := intVec(t, 1, 2, 3)
	if v.Len() != 3 || v.Cap() < 3 {
		t.Fatalf("after pushes: len=%d cap=%d", v.Len(), v.Cap())
	}

	if _, err := v.Insert(1, 99); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if !slices.Equal(v.Slice(), []int{1, 99, 2, 3}) {
		t.Fatalf("after insert: %v", v.Slice())
	}

	v.Erase(0)
	if !slices.Equal(v.Slice(), []int{99, 2, 3}) {
		t.Fatalf("after erase: %v", v.Slice())
	}

	v.PopBack()
	if !slices.Equal(v.Slice(), []int{99, 2}) || v.Len() != 2 {
		t.Fatalf("after pop: %v len=%d", v.Slice(), v.Len())
	}
}

func TestReservePreservesSequence(t *testing.T) {
	v := intVec(t, 1, 2, 3)
	if err := v.Reserve(64); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if v.Cap() != 64 {
		t.Errorf("cap = %d, want exactly 64", v.Cap())
	}
	if !slices.Equal(v.Slice(), []int{1, 2, 3}) {
		t.Errorf("values changed by reserve: %v", v.Slice())
	}

	// shrinking reserve is a no-op
	if err := v.Reserve(1); err != nil {
		t.Fatalf("no-op reserve failed: %v", err)
	}
	if v.Cap() != 64 {
		t.Errorf("no-op reserve changed cap to %d", v.Cap())
	}
}

func TestResizeScenario(t *testing.T) {
	v := intVec(t, 7, 8, 9)
	cap0 := v.Cap()

	if err := v.Resize(0); err != nil {
		t.Fatalf("resize(0) failed: %v", err)
	}
	if v.Len() != 0 || v.Cap() != cap0 {
		t.Fatalf("resize(0): len=%d cap=%d, want 0/%d", v.Len(), v.Cap(), cap0)
	}

	if err := v.Resize(2); err != nil {
		t.Fatalf("resize(2) failed: %v", err)
	}
	if !slices.Equal(v.Slice(), []int{0, 0}) {
		t.Errorf("resize(2) contents: %v, want two zero values", v.Slice())
	}
}

func TestResizeWithDefaultConstructor(t *testing.T) {
	v := New(WithDefault[int](func() (int, error) { return 42, nil }))
	if err := v.Resize(3); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if !slices.Equal(v.Slice(), []int{42, 42, 42}) {
		t.Errorf("contents: %v", v.Slice())
	}
}

func TestInsertEraseRoundTrip(t *testing.T) {
	want := []int{10, 20, 30, 40}
	for i := 0; i <= len(want); i++ {
		v := intVec(t, want...)
		if _, err := v.Insert(i, 99); err != nil {
			t.Fatalf("insert at %d failed: %v", i, err)
		}
		v.Erase(i)
		if !slices.Equal(v.Slice(), want) {
			t.Errorf("round trip at %d: %v, want %v", i, v.Slice(), want)
		}
	}
}

func TestInsertAliasedElement(t *testing.T) {
	v := intVec(t, 1, 2, 3, 4)
	w := intVec(t, 1, 2, 3, 4)

	// force the next insert onto the in-place shifting path
	if err := v.Reserve(8); err != nil {
		t.Fatal(err)
	}
	if err := w.Reserve(8); err != nil {
		t.Fatal(err)
	}

	if _, err := v.Insert(0, *v.At(2)); err != nil {
		t.Fatalf("aliased insert failed: %v", err)
	}
	independent := *w.At(2)
	if _, err := w.Insert(0, independent); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if !slices.Equal(v.Slice(), w.Slice()) {
		t.Errorf("aliased insert %v differs from copied insert %v", v.Slice(), w.Slice())
	}
}

func TestEraseReturnValue(t *testing.T) {
	v := intVec(t, 1, 2, 3)
	if p := v.Erase(0); p == nil || *p != 2 {
		t.Errorf("erase(0) returned %v, want address of 2", p)
	}
	if p := v.Erase(v.Len() - 1); p != nil {
		t.Errorf("erasing last element should return nil, got %v", p)
	}
}

func TestEmplaceReturnsAddress(t *testing.T) {
	v := intVec(t, 1, 3)
	p, err := v.Emplace(1, func() (int, error) { return 2, nil })
	if err != nil {
		t.Fatalf("emplace failed: %v", err)
	}
	if *p != 2 || p != v.At(1) {
		t.Errorf("emplace returned wrong address")
	}
	if !slices.Equal(v.Slice(), []int{1, 2, 3}) {
		t.Errorf("contents: %v", v.Slice())
	}
}

func TestMoveAssignScenario(t *testing.T) {
	a := intVec(t, 1, 2, 3)
	capA := a.Cap()
	b := intVec(t, 8, 9)

	b.MoveFrom(a)
	if !slices.Equal(b.Slice(), []int{1, 2, 3}) || b.Cap() != capA {
		t.Errorf("b = %v cap=%d, want [1 2 3] cap=%d", b.Slice(), b.Cap(), capA)
	}
	if a.Len() != 0 {
		t.Errorf("source len = %d, want 0", a.Len())
	}
	// the emptied source must remain usable
	if err := a.PushBack(5); err != nil {
		t.Errorf("push on moved-from vector failed: %v", err)
	}
	if !slices.Equal(a.Slice(), []int{5}) {
		t.Errorf("moved-from vector contents: %v", a.Slice())
	}
}

func TestAssignSmallerReusesCapacity(t *testing.T) {
	v := intVec(t, 1, 2, 3, 4, 5)
	capBefore := v.Cap()
	src := intVec(t, 7, 8)

	if err := v.Assign(src); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if !slices.Equal(v.Slice(), []int{7, 8}) {
		t.Errorf("contents: %v", v.Slice())
	}
	if v.Cap() != capBefore {
		t.Errorf("assign within capacity reallocated: cap %d -> %d", capBefore, v.Cap())
	}
}

func TestAssignLargerGrows(t *testing.T) {
	v := intVec(t, 1)
	src := intVec(t, 4, 5, 6, 7)
	if err := v.Assign(src); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if !slices.Equal(v.Slice(), []int{4, 5, 6, 7}) {
		t.Errorf("contents: %v", v.Slice())
	}
	// source unchanged
	if !slices.Equal(src.Slice(), []int{4, 5, 6, 7}) {
		t.Errorf("source mutated: %v", src.Slice())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	v := intVec(t, 1, 2, 3)
	c, err := v.Clone()
	if err != nil {
		t.Fatalf("clone failed: %v", err)
	}
	if c.Cap() != v.Len() {
		t.Errorf("clone cap = %d, want %d", c.Cap(), v.Len())
	}
	*c.At(0) = 100
	if *v.At(0) != 1 {
		t.Error("clone shares storage with original")
	}
}

func TestSwap(t *testing.T) {
	a := intVec(t, 1, 2)
	b := intVec(t, 3, 4, 5)
	a.Swap(b)
	if !slices.Equal(a.Slice(), []int{3, 4, 5}) || !slices.Equal(b.Slice(), []int{1, 2}) {
		t.Errorf("swap failed: a=%v b=%v", a.Slice(), b.Slice())
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	v := intVec(t, 1, 2, 3)
	cap0 := v.Cap()
	v.Clear()
	if v.Len() != 0 || v.Cap() != cap0 {
		t.Errorf("clear: len=%d cap=%d, want 0/%d", v.Len(), v.Cap(), cap0)
	}
}

func TestPushBackMoveEmptiesSource(t *testing.T) {
	v := New[[]int]()
	src := []int{1, 2, 3}
	if err := v.PushBackMove(&src); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	if src != nil {
		t.Error("moved-from value not zeroed")
	}
	if got := *v.At(0); len(got) != 3 {
		t.Errorf("stored value = %v", got)
	}
}

func TestPreconditionPanics(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"pop empty", func() { New[int]().PopBack() }},
		{"erase out of range", func() { intVec(t, 1).Erase(1) }},
		{"emplace out of range", func() {
			_, _ = intVec(t, 1).Emplace(5, func() (int, error) { return 0, nil })
		}},
		{"negative resize", func() { _ = New[int]().Resize(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic, got none")
				}
			}()
			tc.fn()
		})
	}
}
