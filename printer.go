package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	ansiValue = "\x1b[94m"
	ansiReset = "\x1b[0m"
)

// printStack writes the final operand stack one value per line in
// storage order, bottom first, preserving each value's stored text.
func printStack(w io.Writer, values []string, colorize bool) error {
	bw := bufio.NewWriter(w)
	for _, val := range values {
		if colorize {
			fmt.Fprintf(bw, "%s%s%s\n", ansiValue, val, ansiReset)
		} else {
			fmt.Fprintln(bw, val)
		}
	}
	return bw.Flush()
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
