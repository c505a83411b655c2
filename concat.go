package dynlist

// Concat appends every element of b, in order, onto l. b is left intact and
// unmodified; both lists refer to the same payloads afterward. A nil l or b
// is a no-op.
func (l *List[T]) Concat(b *List[T]) {
	if l == nil || b == nil || len(b.data) == 0 {
		return
	}
	l.grow(len(b.data))
	l.data = append(l.data, b.data...)
	l.gen++
}

// Absorb appends every element of b onto l, then drains b and detaches its
// backing buffer. The references live on in l only; the payloads they point
// to are untouched. b remains a valid, empty list with zero capacity.
func (l *List[T]) Absorb(b *List[T]) {
	if l == nil || b == nil {
		return
	}
	l.Concat(b)
	b.data = nil
	b.gen++
}
