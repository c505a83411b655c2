package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Op:     OpSet,
				Kind:   KindOutOfRange,
				Index:  12,
				Length: 3,
				Detail: "index 12 out of range (count 3)",
			},
			contains: []string{"[set]", "out_of_range", "index 12", "count 3"},
		},
		{
			name: "minimal error",
			err: &Error{
				Op:   OpDelete,
				Kind: KindNotFound,
			},
			contains: []string{"[delete]", "not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Op:     OpScript,
				Kind:   KindInvalidInput,
				Detail: "bad index",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[script]", "invalid_input", "bad index", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Op:    OpConcat,
		Kind:  KindNilList,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Op:     OpGet,
		Kind:   KindOutOfRange,
		Index:  5,
		Length: 2,
	}

	// Same op and kind
	if !err.Is(&Error{Op: OpGet, Kind: KindOutOfRange}) {
		t.Error("Is should match same op and kind")
	}

	// Different op
	if err.Is(&Error{Op: OpSet, Kind: KindOutOfRange}) {
		t.Error("Is should not match different op")
	}

	// Different kind
	if err.Is(&Error{Op: OpGet, Kind: KindNotFound}) {
		t.Error("Is should not match different kind")
	}

	// Through errors.Is, with fields that differ on purpose
	target := &Error{Op: OpGet, Kind: KindOutOfRange, Index: 99}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match on op and kind only")
	}
}

func TestIsKind(t *testing.T) {
	err := OutOfRange(OpSwap, 7, 3)

	if !IsKind(err, KindOutOfRange) {
		t.Error("IsKind should match the error's kind")
	}
	if IsKind(err, KindNotFound) {
		t.Error("IsKind should reject a different kind")
	}
	if IsKind(errors.New("plain"), KindOutOfRange) {
		t.Error("IsKind should reject non-structured errors")
	}

	// Wrapped structured error
	wrapped := &Error{Op: OpScript, Kind: KindInvalidInput, Cause: err}
	if !IsKind(wrapped, KindInvalidInput) {
		t.Error("IsKind should see the outermost structured error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(OpInsert, KindOutOfRange).
		Index(4).
		Length(2).
		Value("payload").
		Cause(cause).
		Detail("insert position %d beyond tail", 4).
		Build()

	if err.Op != OpInsert || err.Kind != KindOutOfRange {
		t.Fatal("builder lost op or kind")
	}
	if err.Index != 4 || err.Length != 2 {
		t.Fatal("builder lost index or length")
	}
	if err.Value != "payload" {
		t.Fatal("builder lost value")
	}
	if !errors.Is(err, cause) {
		t.Fatal("builder lost cause chain")
	}
	if err.Detail != "insert position 4 beyond tail" {
		t.Fatalf("unexpected detail: %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	oor := OutOfRange(OpDelete, 9, 4)
	if oor.Index != 9 || oor.Length != 4 || oor.Kind != KindOutOfRange {
		t.Fatal("OutOfRange fields wrong")
	}

	nf := NotFound(OpDelete)
	if nf.Kind != KindNotFound || nf.Index != -1 {
		t.Fatal("NotFound fields wrong")
	}

	if EmptyList(OpDeleteLast).Kind != KindEmpty {
		t.Fatal("EmptyList kind wrong")
	}
	if NilList(OpSet).Kind != KindNilList {
		t.Fatal("NilList kind wrong")
	}

	ii := InvalidInput(OpScript, "unknown op %q", "frobnicate")
	if ii.Kind != KindInvalidInput || !strings.Contains(ii.Detail, "frobnicate") {
		t.Fatal("InvalidInput fields wrong")
	}
}
