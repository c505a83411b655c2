package dynlist

import (
	"strings"
	"testing"
)

func TestList_EachOrder(t *testing.T) {
	l := New[string]()
	l.Append("a")
	l.Append("b")
	l.Append("c")

	var seen []string
	l.Each(func(s string) {
		seen = append(seen, s)
	})

	if strings.Join(seen, "") != "abc" {
		t.Fatalf("Expected abc, got %q", strings.Join(seen, ""))
	}
}

func TestList_EachSetAllowed(t *testing.T) {
	l := New[int]()
	l.Append(1)
	l.Append(2)

	// Overwriting slots is not a structural mutation
	i := 0
	l.Each(func(int) {
		if err := l.Set(i, 0); err != nil {
			t.Fatalf("Set during Each failed: %v", err)
		}
		i++
	})

	if got, _ := l.Get(1); got != 0 {
		t.Fatal("Set during Each should take effect")
	}
}

func TestList_EachMutationPanics(t *testing.T) {
	l := New[string]()
	l.Append("a")
	l.Append("b")

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on structural mutation during Each")
		}
	}()

	l.Each(func(string) {
		l.Append("c")
	})
}

func TestEachContext(t *testing.T) {
	l := New[string]()
	l.Append("a")
	l.Append("b")

	var sink strings.Builder
	EachContext(l, func(s string, out *strings.Builder) {
		out.WriteString(s)
	}, &sink)

	if sink.String() != "ab" {
		t.Fatalf("Expected ab, got %q", sink.String())
	}

	// Nil list dispatches nothing
	EachContext(nil, func(string, *strings.Builder) {
		t.Fatal("callback should not run for a nil list")
	}, &sink)
}

func TestEachContext_MutationPanics(t *testing.T) {
	l := New[int]()
	l.Append(1)

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on structural mutation during EachContext")
		}
	}()

	EachContext(l, func(int, int) {
		l.DeleteAt(0)
	}, 0)
}
