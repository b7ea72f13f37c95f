package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/Gers2017/comp/internal/tokenio"
)

const (
	historyFile = ".comp_history"
	promptMain  = "> "
)

// repl drives an interactive session against one persistent machine:
// each line is staged and evaluated as its own run, with the stack
// printed after every successful one. A fatal error ends the line's
// run, not the session.
func repl(ctx context.Context, ev *Eval, cfg Config) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completeCommand)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Printf("comp %v -- postfix calculator. Ctrl+D exits.\n", compVersion)

	colorize := cfg.colorEnabled()
	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			return 1
		}

		tokens := tokenio.SplitLine(line)
		if len(tokens) == 0 {
			continue
		}
		ln.AppendHistory(line)

		if err := ev.Run(ctx, tokens...); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			continue
		}
		printStack(os.Stdout, ev.Stack(), colorize)
	}
}

// completeCommand offers registry spellings matching the last token on
// the line being typed.
func completeCommand(line string) (heads []string) {
	i := strings.LastIndexFunc(line, func(r rune) bool { return r == ' ' || r == '\t' })
	prefix, partial := line[:i+1], line[i+1:]
	if partial == "" {
		return nil
	}
	for name := range commands {
		if strings.HasPrefix(name, partial) {
			heads = append(heads, prefix+name)
		}
	}
	return heads
}
