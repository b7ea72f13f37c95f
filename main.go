package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Gers2017/comp/internal/logio"
	"github.com/Gers2017/comp/internal/tokenio"
)

const compVersion = "1.0.0"

// evalExitCode is the status for fatal evaluation errors, distinct from
// plain usage or I/O failures.
const evalExitCode = 99

func main() {
	ctx := context.Background()

	var (
		file        string
		interactive bool
		trace       bool
		configPath  string
		version     bool
	)
	flag.StringVar(&file, "f", "", "read tokens from a file instead of the arguments")
	flag.BoolVar(&interactive, "i", false, "start an interactive session")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&configPath, "config", "", "path to a config file")
	flag.BoolVar(&version, "version", false, "print version and exit")
	flag.Parse()

	if version {
		fmt.Println("comp", compVersion)
		return
	}

	var logger logio.Logger
	logger.SetOutput(os.Stderr)

	cfg, err := loadConfig(configPath)
	if err != nil {
		logger.Errorf(1, "%v", err)
		os.Exit(logger.ExitCode())
	}

	opts := []Option{
		WithPrecision(cfg.Precision),
		WithWarnf(logger.Warnf),
	}
	if trace {
		opts = append(opts, WithLogf(log.Printf))
	}
	ev := New(opts...)

	if interactive {
		os.Exit(repl(ctx, ev, cfg))
	}

	src := tokenio.FromArgs(flag.Args())
	if file != "" {
		if src, err = tokenio.FromFile(file); err != nil {
			logger.Errorf(1, "%v", err)
			os.Exit(logger.ExitCode())
		}
	}

	if err := ev.Run(ctx, src.Tokens...); err != nil {
		logger.Errorf(evalExitCode, "%v (input %v)", err, src)
		os.Exit(logger.ExitCode())
	}
	if err := printStack(os.Stdout, ev.Stack(), cfg.colorEnabled()); err != nil {
		logger.Errorf(1, "%v", err)
	}
	os.Exit(logger.ExitCode())
}
