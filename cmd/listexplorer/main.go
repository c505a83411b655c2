package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/dynlist"
	"github.com/wippyai/dynlist/errors"
)

func main() {
	var (
		seed        = flag.String("seed", "", "Comma-separated initial elements")
		ops         = flag.String("ops", "", "Op script: append:v,prepend:v,insert:N:v,set:N:v,del:N,dellast,delval:v,swap:A:B,get:N,find:v,clear")
		verbose     = flag.Bool("v", false, "Log list diagnostics to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		dynlist.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(splitSeed(*seed)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *seed == "" && *ops == "" {
		fmt.Fprintln(os.Stderr, "Usage: listexplorer -seed a,b,c [-ops append:d,swap:0:1,...]")
		fmt.Fprintln(os.Stderr, "       listexplorer -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(splitSeed(*seed), *ops); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func splitSeed(seed string) []string {
	if seed == "" {
		return nil
	}
	return strings.Split(seed, ",")
}

func run(seed []string, script string) error {
	l := dynlist.New[string]()
	for _, s := range seed {
		l.Append(s)
	}

	fmt.Printf("List: %s\n", render(l))

	if script == "" {
		return nil
	}

	for _, op := range strings.Split(script, ",") {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		out, err := apply(l, op)
		if err != nil {
			// Out-of-range and not-found are recoverable observations,
			// matching the list's own error contract. Anything that is
			// not a structured list error aborts the script.
			var e *errors.Error
			if !stderrors.As(err, &e) {
				return err
			}
			if e.Kind == errors.KindInvalidInput {
				return err
			}
			fmt.Printf("  %-22s ! %v\n", op, err)
			continue
		}
		fmt.Printf("  %-22s %s -> %s\n", op, out, render(l))
	}

	fmt.Printf("Final: %s (count %d, capacity %d)\n", render(l), l.Len(), l.Cap())
	return nil
}

// apply executes one script op against the list and describes what happened.
func apply(l *dynlist.List[string], op string) (string, error) {
	parts := strings.SplitN(op, ":", 3)

	switch parts[0] {
	case "append":
		v, err := opArg(op, parts, 1)
		if err != nil {
			return "", err
		}
		l.Append(v)
		return "appended", nil

	case "prepend":
		v, err := opArg(op, parts, 1)
		if err != nil {
			return "", err
		}
		l.Prepend(v)
		return "prepended", nil

	case "insert":
		n, err := opIndex(op, parts, 1)
		if err != nil {
			return "", err
		}
		v, err := opArg(op, parts, 2)
		if err != nil {
			return "", err
		}
		l.Insert(n, v)
		return fmt.Sprintf("inserted at %d", n), nil

	case "set":
		n, err := opIndex(op, parts, 1)
		if err != nil {
			return "", err
		}
		v, err := opArg(op, parts, 2)
		if err != nil {
			return "", err
		}
		if err := l.Set(n, v); err != nil {
			return "", err
		}
		return fmt.Sprintf("set %d", n), nil

	case "del":
		n, err := opIndex(op, parts, 1)
		if err != nil {
			return "", err
		}
		if err := l.DeleteAt(n); err != nil {
			return "", err
		}
		return fmt.Sprintf("deleted %d", n), nil

	case "dellast":
		v, err := l.DeleteLast()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("deleted last (%q)", v), nil

	case "delval":
		v, err := opArg(op, parts, 1)
		if err != nil {
			return "", err
		}
		if err := l.Delete(v); err != nil {
			return "", err
		}
		return fmt.Sprintf("deleted %q", v), nil

	case "swap":
		a, err := opIndex(op, parts, 1)
		if err != nil {
			return "", err
		}
		b, err := opIndex(op, parts, 2)
		if err != nil {
			return "", err
		}
		if err := l.Swap(a, b); err != nil {
			return "", err
		}
		return fmt.Sprintf("swapped %d and %d", a, b), nil

	case "get":
		n, err := opIndex(op, parts, 1)
		if err != nil {
			return "", err
		}
		v, err := l.GetErr(n)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("got %q", v), nil

	case "find":
		v, err := opArg(op, parts, 1)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("index of %q is %d", v, l.IndexOf(v)), nil

	case "clear":
		l.Clear()
		return "cleared", nil

	default:
		return "", errors.InvalidInput(errors.OpScript, "unknown op %q", parts[0])
	}
}

func opArg(op string, parts []string, i int) (string, error) {
	if len(parts) <= i || parts[i] == "" {
		return "", errors.InvalidInput(errors.OpScript, "op %q is missing an argument", op)
	}
	return parts[i], nil
}

func opIndex(op string, parts []string, i int) (int, error) {
	s, err := opArg(op, parts, i)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.OpScript, errors.KindInvalidInput).
			Detail("op %q has a non-numeric index %q", op, s).
			Cause(err).
			Build()
	}
	return n, nil
}

func render(l *dynlist.List[string]) string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	l.Each(func(s string) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(s)
	})
	b.WriteByte(']')
	return b.String()
}
