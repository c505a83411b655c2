package dynlist

import (
	"go.uber.org/zap"

	"github.com/wippyai/dynlist/errors"
)

// defaultCapacity seeds the backing buffer when no size hint is given.
const defaultCapacity = 8

// List is a growable, contiguous sequence of references of type T.
//
// The list stores reference values only. It never copies, inspects, or
// releases the data a reference points to; payload lifetime belongs to the
// caller. Comparisons (IndexOf, Delete) use ==, which for pointer types is
// reference identity.
//
// A nil *List behaves as an empty list: reads return zero values and
// not-found results, mutators are no-ops. List is not safe for concurrent
// use.
type List[T comparable] struct {
	data []T
	gen  uint32 // bumped on structural mutation; guards Each
}

// New returns an empty list with a default capacity.
func New[T comparable]() *List[T] {
	return NewSize[T](defaultCapacity)
}

// NewSize returns an empty list with capacity for n elements.
// A non-positive n falls back to the default capacity.
func NewSize[T comparable](n int) *List[T] {
	if n <= 0 {
		n = defaultCapacity
	}
	return &List[T]{data: make([]T, 0, n)}
}

// Clone returns a shallow copy: a new backing buffer with the same count,
// capacity, and reference values. The referenced data is not duplicated, so
// both lists point at the same payloads afterward. Returns nil when l is nil
// or empty.
func (l *List[T]) Clone() *List[T] {
	if l == nil || len(l.data) == 0 {
		return nil
	}
	dup := make([]T, len(l.data), cap(l.data))
	copy(dup, l.data)
	return &List[T]{data: dup}
}

// Clear resets the count to zero. The backing buffer is kept for reuse.
// Every reference the list held is forgotten without cleanup; release the
// payloads first if they need it.
func (l *List[T]) Clear() {
	if l == nil {
		return
	}
	var zero T
	for i := range l.data {
		l.data[i] = zero // drop stale references so payloads can be collected
	}
	l.data = l.data[:0]
	l.gen++
}

// Release detaches the backing buffer so the garbage collector can reclaim
// it, leaving a valid empty list with zero capacity. Referenced payloads are
// untouched.
func (l *List[T]) Release() {
	if l == nil {
		return
	}
	l.data = nil
	l.gen++
}

// Get returns the reference at position n.
// Returns (zero, false) when n is out of range or the list is nil.
func (l *List[T]) Get(n int) (T, bool) {
	var zero T
	if l == nil || n < 0 || n >= len(l.data) {
		return zero, false
	}
	return l.data[n], true
}

// GetErr is Get with a structured error describing why the read failed.
func (l *List[T]) GetErr(n int) (T, error) {
	var zero T
	if l == nil {
		return zero, errors.NilList(errors.OpGet)
	}
	if n < 0 || n >= len(l.data) {
		return zero, errors.OutOfRange(errors.OpGet, n, len(l.data))
	}
	return l.data[n], nil
}

// Set overwrites the reference at position n with v. The previous reference
// is dropped without cleanup. An out-of-range n leaves the list unchanged;
// the condition is logged and reported through the returned error.
func (l *List[T]) Set(n int, v T) error {
	if l == nil {
		return errors.NilList(errors.OpSet)
	}
	if n < 0 || n >= len(l.data) {
		Logger().Debug("set index out of range",
			zap.Int("index", n),
			zap.Int("count", len(l.data)))
		return errors.OutOfRange(errors.OpSet, n, len(l.data))
	}
	l.data[n] = v
	return nil
}

// Len returns the number of elements. Zero for a nil list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.data)
}

// Cap returns the allocated slot capacity. Zero for a nil list.
func (l *List[T]) Cap() int {
	if l == nil {
		return 0
	}
	return cap(l.data)
}
