package dynlist

// Each invokes fn once per element, in index order from first to last.
// Dispatch is synchronous and single-threaded.
//
// fn must not structurally mutate the list it is iterating (append, insert,
// delete, swap, clear). Doing so panics, the same way Go maps reject
// mutation during iteration. Overwriting a slot with Set is allowed.
func (l *List[T]) Each(fn func(T)) {
	if l == nil {
		return
	}
	gen := l.gen
	for i := 0; i < len(l.data); i++ {
		fn(l.data[i])
		if l.gen != gen {
			panic("dynlist: list mutated during iteration")
		}
	}
}

// EachContext invokes fn once per element in index order, passing ctx
// unchanged on every call. It exists for dispatching to shared callbacks that
// are not closures; when a closure is available, Each captures context
// directly. The no-mutation contract of Each applies.
func EachContext[T comparable, C any](l *List[T], fn func(T, C), ctx C) {
	if l == nil {
		return
	}
	gen := l.gen
	for i := 0; i < len(l.data); i++ {
		fn(l.data[i], ctx)
		if l.gen != gen {
			panic("dynlist: list mutated during iteration")
		}
	}
}
