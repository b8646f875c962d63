// Command linedemo exercises the linekit geometry kernel and the text
// layout engine from the command line.
//
// Usage:
//
//	linedemo classify 0 0 10 5
//	linedemo intersect 0 0 10 10 0 10 10 0
//	linedemo stroke --width 4 0 0 10 0
//	linedemo layout --filter letters --max 5 "Hello, world"
//	linedemo render --angle=-8 -o hello.png "Hello, world"
//
// Defaults are read from LINEDEMO_* environment variables; layout options
// can be loaded from a TOML file with --config.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	a := newApp(os.Stderr, s)
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
