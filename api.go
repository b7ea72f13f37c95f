package main

import (
	"context"
	"errors"
)

// New builds an evaluation machine with zeroed registers, an empty
// stack and the fixed command registry ready for dispatch.
func New(opts ...Option) *Eval {
	var ev Eval
	for i := range ev.regs {
		ev.regs[i] = "0"
	}
	defaultOptions.apply(&ev)
	Options(opts...).apply(&ev)
	return &ev
}

// Run stages tokens onto the pending queue and evaluates until the
// queue empties or a fatal error halts the run; the final operand stack
// is the program's output. On error any unevaluated queue remainder is
// discarded so a longer-lived machine (the interactive session) starts
// its next run clean.
func (ev *Eval) Run(ctx context.Context, tokens ...string) error {
	ev.queue = append(ev.queue, tokens...)
	err := isolate("eval", func() error {
		ev.run(ctx)
		return nil
	})
	if err != nil {
		ev.queue = nil
	}
	var halted haltError
	if errors.As(err, &halted) {
		err = halted.error
	}
	return err
}

// Option configures an Eval under construction.
type Option interface{ apply(ev *Eval) }

// Options combines options into one.
func Options(opts ...Option) Option {
	var list optionList
	for _, opt := range opts {
		if opt != nil {
			list = append(list, opt)
		}
	}
	return list
}

// WithLogf enables step tracing through a printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfnOption(logfn) }

// WithWarnf routes non-fatal warnings (drop on an empty stack) through
// a printf-style function.
func WithWarnf(warnfn func(mess string, args ...interface{})) Option { return warnfnOption(warnfn) }

// WithPrecision fixes the number of decimals used to format computed
// values; the default -1 keeps the shortest exact representation.
func WithPrecision(prec int) Option { return precisionOption(prec) }
