package seqvec

import "testing"

// ---------------- Basic Benchmarks ---------------- //

func BenchmarkPushBack(b *testing.B) {
	v := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.PushBack(i)
	}
}

func BenchmarkPushBackPreReserved(b *testing.B) {
	v := New[int]()
	_ = v.Reserve(b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.PushBack(i)
	}
}

func BenchmarkInsertFront(b *testing.B) {
	v := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Insert(0, i)
	}
}

func BenchmarkEraseFront(b *testing.B) {
	v := New[int]()
	_ = v.Resize(b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Erase(0)
	}
}

func BenchmarkAt(b *testing.B) {
	v := New[int]()
	_ = v.Resize(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = *v.At(i & 1023)
	}
}
