// Package errors provides structured error types for the dynlist library.
//
// Errors are categorized by Op (which list operation failed) and Kind (error
// category). The Error type carries the offending index and the list count at
// the time of failure, plus an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpInsert, errors.KindOutOfRange).
//		Index(12).
//		Length(3).
//		Detail("insert position beyond tail").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(errors.OpSet, 12, 3)
//	err := errors.NotFound(errors.OpDelete)
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on Op and Kind so callers can test for a category without
// comparing messages.
package errors
