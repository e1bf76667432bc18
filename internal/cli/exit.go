package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palide/detect-lens/internal/config"
)

// Process exit codes.
const (
	// ExitOK means a circle was found and reported.
	ExitOK = 0

	// ExitFailure means the input image could not be read, or another
	// I/O step such as writing the overlay failed.
	ExitFailure = 1

	// ExitNoCircle means the image was read but no circle matched.
	ExitNoCircle = 2

	// ExitUsage means the command line or config file was invalid.
	ExitUsage = 64
)

var (
	// ErrNoCircle is returned when the detector finds no candidate.
	ErrNoCircle = errors.New("no circle detected; try adjusting --min-radius/--max-radius/--param2")

	// ErrUsage marks errors caused by how the command was invoked.
	ErrUsage = errors.New("usage error")
)

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNoCircle):
		return ExitNoCircle
	case errors.Is(err, ErrUsage), errors.Is(err, config.ErrInvalid):
		return ExitUsage
	default:
		// imaging.ErrUnreadableImage, imaging.ErrOverlayWrite and
		// detector failures
		return ExitFailure
	}
}

// Execute runs cmd, prints any error to its error stream, and returns the
// exit code for the process.
func Execute(cmd *cobra.Command) int {
	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return ExitOK
	}

	errOut := cmd.ErrOrStderr()
	fmt.Fprintln(errOut, err)
	if errors.Is(err, ErrUsage) {
		fmt.Fprintf(errOut, "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return ExitCode(err)
}

// usageError tags err as an invocation problem.
func usageError(err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}
