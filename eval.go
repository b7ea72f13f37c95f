package main

import (
	"context"
	"strconv"
)

// Eval is one complete evaluation machine: the pending token queue that
// drives control flow, the operand stack that holds data, the three
// memory registers, and the user function table. All of it is owned and
// mutated exclusively by the evaluation loop; there are no globals.
type Eval struct {
	// queue holds the tokens not yet evaluated; the front element is
	// evaluated next. Native commands may push tokens back onto the
	// front (function expansion, comment skipping), which is how macro
	// inlining works without a call stack.
	queue []string

	// stack holds operand values as text convertible to float64; the
	// top of stack is the last element. Only native commands push and
	// pop it.
	stack []string

	// regs are the a, b and c memory registers, independent of the
	// stack and persisting for the run.
	regs [numRegisters]string

	// funcs is the user function table, in definition order. Redefining
	// a name appends a duplicate entry; lookup returns the first match.
	funcs []function

	prec   int
	logfn  func(mess string, args ...interface{})
	warnfn func(mess string, args ...interface{})
}

const numRegisters = 3

// function is a named macro body: an ordered token sequence captured by
// fn ... end, immutable once defined.
type function struct {
	name string
	body []string
}

func (ev *Eval) logf(mess string, args ...interface{}) {
	if ev.logfn != nil {
		ev.logfn(mess, args...)
	}
}

func (ev *Eval) warnf(mess string, args ...interface{}) {
	if ev.warnfn != nil {
		ev.warnfn(mess, args...)
	}
}

// Stack returns the operand stack in storage order, bottom first.
func (ev *Eval) Stack() []string { return ev.stack }

func (ev *Eval) run(ctx context.Context) {
	for len(ev.queue) > 0 {
		ev.haltif(ctx.Err())
		ev.step()
	}
}

// step consumes exactly one token from the queue front: a registry hit
// runs the native command, a function table hit expands the macro body,
// anything else must be a numeric literal destined for the stack.
func (ev *Eval) step() {
	token := ev.dequeue()
	if code, ok := commands[token]; ok {
		ev.logf("exec %q -- s:%v", token, ev.stack)
		ev.exec(token, code)
		return
	}
	if body, ok := ev.lookup(token); ok {
		ev.logf("expand %q -> %v", token, body)
		ev.requeue(body)
		return
	}
	if _, err := strconv.ParseFloat(token, 64); err != nil {
		ev.halt(parseError(token))
	}
	ev.logf("push %v", token)
	ev.stack = append(ev.stack, token)
}

func (ev *Eval) dequeue() (token string) {
	token, ev.queue = ev.queue[0], ev.queue[1:]
	return token
}

// requeue inserts tokens at the front of the queue, in order, ahead of
// whatever follows the call site.
func (ev *Eval) requeue(tokens []string) {
	ev.queue = append(append(make([]string, 0, len(tokens)+len(ev.queue)), tokens...), ev.queue...)
}

func (ev *Eval) lookup(name string) ([]string, bool) {
	for i := range ev.funcs {
		if ev.funcs[i].name == name {
			return ev.funcs[i].body, true
		}
	}
	return nil, false
}

// defineFunction consumes the next queue token as the new function's
// name, then captures body tokens until an end token, which is
// discarded. The name is never resolved, so it may shadow nothing and
// collide with anything; commands still win at dispatch time. A missing
// end simply captures the rest of the queue.
func (ev *Eval) defineFunction() {
	if len(ev.queue) == 0 {
		return
	}
	name := ev.dequeue()
	var body []string
	for len(ev.queue) > 0 {
		token := ev.dequeue()
		if token == tokenEnd {
			break
		}
		body = append(body, token)
	}
	ev.logf("define %q %v", name, body)
	ev.funcs = append(ev.funcs, function{name: name, body: body})
}

// skipComment discards tokens until the matching close paren, counting
// one nesting level per nested open paren. Exhausting the queue before
// the close is tolerated: skipping just stops.
func (ev *Eval) skipComment() {
	depth := 0
	for len(ev.queue) > 0 {
		switch ev.dequeue() {
		case tokenOpenParen:
			depth++
		case tokenCloseParen:
			if depth == 0 {
				return
			}
			depth--
		}
	}
}
