package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Op identifies which list operation produced the error
type Op string

const (
	OpGet        Op = "get"
	OpSet        Op = "set"
	OpInsert     Op = "insert"
	OpDelete     Op = "delete"
	OpDeleteLast Op = "delete_last"
	OpSwap       Op = "swap"
	OpConcat     Op = "concat"
	OpClone      Op = "clone"
	OpScript     Op = "script" // listexplorer op-script parsing
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfRange   Kind = "out_of_range"
	KindNotFound     Kind = "not_found"
	KindEmpty        Kind = "empty"
	KindNilList      Kind = "nil_list"
	KindInvalidInput Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Op     Op
	Kind   Kind
	Index  int
	Length int
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err is an *Error of the given kind, regardless of Op.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Index sets the offending index
func (b *Builder) Index(n int) *Builder {
	b.err.Index = n
	return b
}

// Length sets the list count at the time of failure
func (b *Builder) Length(n int) *Builder {
	b.err.Length = n
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfRange creates an out-of-range index error
func OutOfRange(op Op, index, length int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOutOfRange,
		Index:  index,
		Length: length,
		Detail: fmt.Sprintf("index %d out of range (count %d)", index, length),
		Value:  index,
	}
}

// NotFound creates a no-matching-element error
func NotFound(op Op) *Error {
	return &Error{
		Op:     op,
		Kind:   KindNotFound,
		Index:  -1,
		Detail: "no matching element",
	}
}

// EmptyList creates an error for operations that need at least one element
func EmptyList(op Op) *Error {
	return &Error{
		Op:     op,
		Kind:   KindEmpty,
		Detail: "list is empty",
	}
}

// NilList creates an error for operations invoked on an absent list
func NilList(op Op) *Error {
	return &Error{
		Op:     op,
		Kind:   KindNilList,
		Detail: "list is nil",
	}
}

// InvalidInput creates an input validation error
func InvalidInput(op Op, detail string, args ...any) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidInput,
		Detail: fmt.Sprintf(detail, args...),
	}
}
