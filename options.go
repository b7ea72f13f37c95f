package main

import (
	"fmt"
	"os"
)

var defaultOptions = Options(
	precisionOption(-1),
	warnfnOption(func(mess string, args ...interface{}) {
		fmt.Fprintf(os.Stderr, "WARN: "+mess+"\n", args...)
	}),
)

type optionList []Option

func (list optionList) apply(ev *Eval) {
	for _, opt := range list {
		opt.apply(ev)
	}
}

type logfnOption func(mess string, args ...interface{})
type warnfnOption func(mess string, args ...interface{})
type precisionOption int

func (logfn logfnOption) apply(ev *Eval)    { ev.logfn = logfn }
func (warnfn warnfnOption) apply(ev *Eval)  { ev.warnfn = warnfn }
func (prec precisionOption) apply(ev *Eval) { ev.prec = int(prec) }
