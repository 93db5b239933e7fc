package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ttrack/internal/compose"
	"ttrack/internal/config"
	"ttrack/internal/exitcode"
	"ttrack/internal/service"
	"ttrack/internal/session"
)

func init() {
	Register(&SuggestCmd{})
}

// SuggestCmd implements the suggest command.
type SuggestCmd struct{}

func (c *SuggestCmd) Name() string      { return "suggest" }
func (c *SuggestCmd) Aliases() []string { return nil }
func (c *SuggestCmd) Synopsis() string  { return "Show AI task suggestions" }
func (c *SuggestCmd) Usage() string     { return "ttrack suggest [common flags]" }
func (c *SuggestCmd) NeedsAuth() bool   { return true }

func (c *SuggestCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SuggestCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Manager, svc service.Backend, args []string, out, errOut io.Writer) int {
	composer := compose.New(svc, cfg.Log)
	if !composer.Available(ctx) {
		if !cfg.Quiet {
			fmt.Fprintln(out, "ai assistant is not available")
		}
		return exitcode.Success
	}

	res, err := svc.TaskSuggestions(ctx)
	if err != nil {
		cfg.Log.Debug().Err(err).Msg("task suggestions failed")
		if !cfg.Quiet {
			fmt.Fprintln(out, "no suggestions available")
		}
		return exitcode.Success
	}

	for _, s := range res.Suggestions {
		fmt.Fprintf(out, "  - %s\n", s)
	}
	if res.Insight != "" {
		fmt.Fprintf(out, "\ninsight: %s\n", res.Insight)
	}
	if len(res.Suggestions) == 0 && res.Insight == "" && !cfg.Quiet {
		fmt.Fprintln(out, "no suggestions available")
	}
	return exitcode.Success
}
