// Command tinyforest estimates the CO2 captured by tiny forests and compares
// it with employee emissions.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/tinyforest/internal/cli"
	"github.com/rshade/tinyforest/internal/forest"
	"github.com/rshade/tinyforest/pkg/version"
)

// Exit codes.
const (
	exitOK         = 0
	exitError      = 1
	exitInvalidAge = 2
)

func main() {
	os.Exit(run())
}

// run executes the CLI and maps its error to an exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.String())
	if err := root.ExecuteContext(ctx); err != nil {
		return exitCodeFor(err)
	}
	return exitOK
}

// exitCodeFor returns 2 for a zero tree age and 1 for anything else.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, forest.ErrInvalidAge):
		return exitInvalidAge
	default:
		return exitError
	}
}
