package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ttrack/internal/compose"
	"ttrack/internal/config"
	"ttrack/internal/exitcode"
	"ttrack/internal/output"
	"ttrack/internal/service"
	"ttrack/internal/session"
)

func init() {
	Register(&StatsCmd{})
}

// StatsCmd implements the stats command: the aggregate summary plus,
// when the assistant is up, its productivity insight.
type StatsCmd struct{}

func (c *StatsCmd) Name() string      { return "stats" }
func (c *StatsCmd) Aliases() []string { return nil }
func (c *StatsCmd) Synopsis() string  { return "Show completion statistics" }
func (c *StatsCmd) Usage() string     { return "ttrack stats [common flags]" }
func (c *StatsCmd) NeedsAuth() bool   { return true }

func (c *StatsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatsCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Manager, svc service.Backend, args []string, out, errOut io.Writer) int {
	stats, err := svc.Stats(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	output.FormatStats(out, stats)

	// The insight is advisory: any failure past this point is logged
	// and the stats above stand on their own.
	composer := compose.New(svc, cfg.Log)
	if !composer.Available(ctx) {
		return exitcode.Success
	}
	insight, err := svc.ProductivityInsight(ctx)
	if err != nil {
		cfg.Log.Debug().Err(err).Msg("productivity insight failed")
		return exitcode.Success
	}
	if insight != "" {
		fmt.Fprintf(out, "\ninsight: %s\n", insight)
	}
	return exitcode.Success
}
