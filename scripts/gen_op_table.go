// Command gen_op_table regenerates the command reference table from the
// registry literal in ops.go. Rows are piped through sort so the table
// stays alphabetical regardless of registry ordering.
//
// Usage: go run scripts/gen_op_table.go [ops.go [OPS.md]]
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		sorter := exec.CommandContext(ctx, "sort")
		sortPipe, err := sorter.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		fmt.Fprintf(out, "# comp command reference\n\n")
		fmt.Fprintf(out, "Generated from %v.\n\n", in.Name())
		fmt.Fprintf(out, "| spelling | operation |\n|---|---|\n")
		sorter.Stdout = out
		sorter.Stderr = os.Stderr

		out = sortPipe

		close(ready)
		if err := sorter.Run(); err != nil {
			return fmt.Errorf("sort run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

var registryEntry = regexp.MustCompile(`"(.+?)": *op(\w+),`)

func run(ctx context.Context) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		for _, match := range registryEntry.FindAllSubmatch(sc.Bytes(), -1) {
			if _, err := fmt.Fprintf(out, "| `%s` | %s |\n", match[1], match[2]); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}
