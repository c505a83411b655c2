package dynlist

import (
	"testing"
)

func BenchmarkList_Append(b *testing.B) {
	l := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Append(i)
	}
}

func BenchmarkList_Prepend(b *testing.B) {
	l := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Prepend(i)
	}
}

func BenchmarkList_IndexOf(b *testing.B) {
	l := New[int]()
	for i := 0; i < 1024; i++ {
		l.Append(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if l.IndexOf(1023) != 1023 {
			b.Fatal("element not found")
		}
	}
}

func BenchmarkList_Each(b *testing.B) {
	l := New[int]()
	for i := 0; i < 1024; i++ {
		l.Append(i)
	}
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		l.Each(func(v int) { sum += v })
	}
	_ = sum
}
