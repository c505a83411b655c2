package dynlist

import (
	"go.uber.org/zap"

	"github.com/wippyai/dynlist/errors"
)

// grow makes room for at least n more elements, doubling capacity until it
// fits. Doubling keeps Append amortized O(1).
func (l *List[T]) grow(n int) {
	need := len(l.data) + n
	if need <= cap(l.data) {
		return
	}
	newCap := cap(l.data)
	if newCap == 0 {
		newCap = defaultCapacity
	}
	for newCap < need {
		newCap *= 2
	}
	next := make([]T, len(l.data), newCap)
	copy(next, l.data)
	l.data = next
}

// Append adds v as the new last element.
func (l *List[T]) Append(v T) {
	if l == nil {
		return
	}
	l.grow(1)
	l.data = append(l.data, v)
	l.gen++
}

// Prepend adds v as the new first element, shifting every existing element
// one position toward the tail.
func (l *List[T]) Prepend(v T) {
	l.Insert(0, v)
}

// Insert places v at position n, shifting elements at and after n toward the
// tail. An n at or beyond the current count appends; a negative n prepends.
func (l *List[T]) Insert(n int, v T) {
	if l == nil {
		return
	}
	if n >= len(l.data) {
		l.Append(v)
		return
	}
	if n < 0 {
		n = 0
	}
	l.grow(1)
	var zero T
	l.data = append(l.data, zero)
	copy(l.data[n+1:], l.data[n:])
	l.data[n] = v
	l.gen++
}

// DeleteAt removes the element at position n, shifting later elements toward
// the head. An out-of-range n leaves the list unchanged; the condition is
// logged and reported through the returned error. The removed reference's
// payload is not released.
func (l *List[T]) DeleteAt(n int) error {
	if l == nil {
		return errors.NilList(errors.OpDelete)
	}
	if n < 0 || n >= len(l.data) {
		Logger().Debug("delete index out of range",
			zap.Int("index", n),
			zap.Int("count", len(l.data)))
		return errors.OutOfRange(errors.OpDelete, n, len(l.data))
	}
	l.removeAt(n)
	return nil
}

// removeAt shifts the tail down over position n and clears the vacated slot.
func (l *List[T]) removeAt(n int) {
	var zero T
	copy(l.data[n:], l.data[n+1:])
	last := len(l.data) - 1
	l.data[last] = zero // drop the stale reference
	l.data = l.data[:last]
	l.gen++
}

// DeleteLast removes and returns the final element.
// Fails with an empty-list error when there is nothing to remove.
func (l *List[T]) DeleteLast() (T, error) {
	var zero T
	if l == nil || len(l.data) == 0 {
		return zero, errors.EmptyList(errors.OpDeleteLast)
	}
	last := len(l.data) - 1
	v := l.data[last]
	l.removeAt(last)
	return v, nil
}

// Delete removes the first element equal to v, shifting later elements toward
// the head. Fails with a not-found error when no element matches. The
// matched reference's payload is not released.
func (l *List[T]) Delete(v T) error {
	n := l.IndexOf(v)
	if n < 0 {
		return errors.NotFound(errors.OpDelete)
	}
	l.removeAt(n)
	return nil
}

// Swap exchanges the references at positions a and b in place. Out-of-range
// indices leave the list unchanged; the condition is logged and reported
// through the returned error.
func (l *List[T]) Swap(a, b int) error {
	if l == nil {
		return errors.NilList(errors.OpSwap)
	}
	if a < 0 || a >= len(l.data) || b < 0 || b >= len(l.data) {
		Logger().Debug("swap index out of range",
			zap.Int("a", a),
			zap.Int("b", b),
			zap.Int("count", len(l.data)))
		return errors.OutOfRange(errors.OpSwap, max(a, b), len(l.data))
	}
	l.data[a], l.data[b] = l.data[b], l.data[a]
	return nil
}
