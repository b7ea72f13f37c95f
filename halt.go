package main

import (
	"fmt"
	"runtime/debug"
)

// Fatal evaluation failures abort the run by panicking with a haltError
// from deep inside the operation that detected them; Run recovers it at
// the API boundary and hands back the wrapped error. There is no
// partial-result recovery: a fatal error surfaces, always.

type haltError struct{ error }

func (err haltError) Error() string { return fmt.Sprintf("evaluation halted: %v", err.error) }
func (err haltError) Unwrap() error { return err.error }

func (ev *Eval) halt(err error) {
	ev.logf("halt error: %v", err)
	panic(haltError{err})
}

func (ev *Eval) haltif(err error) {
	if err != nil {
		ev.halt(err)
	}
}

// underflowError reports a native command invoked with fewer operands
// than its contract requires, naming the command and the depth it
// needed.
type underflowError struct {
	cmd  string
	want int
}

func (err underflowError) Error() string {
	return fmt.Sprintf("stack underflow: %q needs %v operand(s)", err.cmd, err.want)
}

// parseError reports a token that is neither a command, a known
// function name, nor a parseable number.
type parseError string

func (token parseError) Error() string {
	return fmt.Sprintf("unrecognized token %q", string(token))
}

// isolate runs f on its own goroutine so that any panic, haltError
// included, comes back as an error instead of unwinding the caller.
func isolate(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}

func recoverPanicError(name string, errch chan<- error) {
	var pe panicError
	if pe.e = recover(); pe.e != nil {
		pe.name = name
		pe.stack = debug.Stack()
		select {
		case errch <- pe:
		default:
		}
	}
}

type panicError struct {
	name  string
	e     interface{}
	stack []byte
}

func (pe panicError) Error() string {
	return fmt.Sprint(pe)
}

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.e)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.e)
	}
	if c == 'v' && f.Flag('+') {
		if _, handled := pe.e.(haltError); !handled {
			fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
		}
	}
}

func (pe panicError) Unwrap() error {
	err, _ := pe.e.(error)
	return err
}
