package dynlist

// IndexOf scans in order from the head and returns the position of the first
// element equal to v, or -1 when no element matches or the list is nil.
// O(count).
func (l *List[T]) IndexOf(v T) int {
	if l == nil {
		return -1
	}
	for i, e := range l.data {
		if e == v {
			return i
		}
	}
	return -1
}

// Contains reports whether the list holds at least one element equal to v.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}
