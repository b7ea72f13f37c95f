// Package tokenio stages the flat token sequence one evaluation run
// consumes. All input is read up front, before evaluation begins, so
// the machine itself never performs I/O; the origin of the tokens
// (process arguments, a file, a typed line) is erased beyond a source
// name kept for diagnostics.
package tokenio

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Source is a named, fully staged token sequence.
type Source struct {
	Name   string
	Tokens []string
}

func (src Source) String() string {
	return fmt.Sprintf("%v (%v tokens)", src.Name, len(src.Tokens))
}

// FromArgs stages tokens taken verbatim from process arguments.
func FromArgs(args []string) Source {
	return Source{Name: "<args>", Tokens: args}
}

// FromFile stages the whole contents of a file, split on whitespace.
func FromFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, err
	}
	return Source{Name: path, Tokens: strings.Fields(string(data))}, nil
}

// FromReader stages the whole contents of a reader, split on
// whitespace, under the given source name.
func FromReader(name string, r io.Reader) (Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Source{Name: name}, err
	}
	return Source{Name: name, Tokens: strings.Fields(string(data))}, nil
}

// SplitLine stages one typed line, split on whitespace.
func SplitLine(line string) []string {
	return strings.Fields(line)
}
