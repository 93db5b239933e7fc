// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"ttrack/internal/config"
	"ttrack/internal/service"
	"ttrack/internal/session"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command requires a live session.
	// The dispatcher's route guard denies such commands when anonymous.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg and sessions are always provided; svc is the backend client
	// (nil only when no factory is wired and the command runs pre-flight).
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, sessions *session.Manager, svc service.Backend, args []string, out, errOut io.Writer) int
}
