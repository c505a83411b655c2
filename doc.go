// Package dynlist provides a generic, resizable, contiguous-storage list.
//
// The list stores opaque references to externally-owned data: it keeps the
// reference values in a contiguous backing buffer and never copies, inspects,
// or releases whatever a reference points to. It is the foundational sequence
// container for hosts that manage payload lifetime themselves.
//
// # Architecture Overview
//
// The module is organized into a small set of packages:
//
//	dynlist/             Root package with the List container and its operations
//	├── errors/          Structured error types (operation + kind taxonomy)
//	└── cmd/
//	    └── listexplorer/  CLI and TUI for interactively exercising a list
//
// # Quick Start
//
// Create a list, fill it, and walk it:
//
//	l := dynlist.New[*Sprite]()
//	l.Append(player)
//	l.Prepend(background)
//	l.Insert(1, overlay)
//
//	l.Each(func(s *Sprite) {
//	    s.Draw()
//	})
//
//	if err := l.Delete(overlay); err != nil {
//	    log.Fatal(err)
//	}
//
// # Element Semantics
//
// The element type is constrained to comparable so that search and
// delete-by-value operate on reference identity: two pointers match only when
// they are the same pointer. Pointers, interfaces, handles, strings, and
// integers all qualify.
//
// Clone is shallow. The new list has its own backing buffer holding the same
// reference values; mutating the clone's slots never disturbs the original,
// but both lists refer to the same payloads.
//
// # Error Handling
//
// Out-of-range indices, missing values, and removal from an empty list are
// recoverable conditions reported through the errors subpackage, never by
// panicking or terminating. Out-of-range writes and deletes additionally emit
// a debug event through the package logger (see SetLogger); the list is left
// unchanged. Every operation tolerates a nil *List, treating it as an empty
// list.
//
// # Thread Safety
//
// List is NOT safe for concurrent use. Callers sharing a list across
// goroutines must serialize access. Structurally mutating a list from inside
// an Each callback is rejected with a panic, matching the behavior of Go map
// iteration.
//
// # Memory Model
//
// The backing buffer grows geometrically, so Append is amortized O(1).
// Clear keeps the buffer for reuse; Release detaches it for the garbage
// collector. On either path the referenced payloads are untouched — releasing
// them is always the caller's job.
package dynlist
