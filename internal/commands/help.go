package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ttrack/internal/config"
	"ttrack/internal/exitcode"
	"ttrack/internal/service"
	"ttrack/internal/session"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "ttrack help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Manager, svc service.Backend, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  ttrack                                             List tasks
  ttrack list [common flags] [--search <term>] [--status <s>] [--priority <p>]
  ttrack add [common flags] [--desc <text>] [--priority <p>] [--status <s>] [--ai] [--recommend] <title...>
  ttrack edit [common flags] [--title <t>] [--desc <d>] [--status <s>] [--priority <p>] <id>
  ttrack show [common flags] <id>
  ttrack done [common flags] <id>
  ttrack rm [common flags] [--force] <id>
  ttrack stats [common flags]
  ttrack suggest [common flags]
  ttrack login [common flags] [--password <pw>] <username>
  ttrack logout [common flags]
  ttrack whoami [common flags]
  ttrack help
  ttrack version

Statuses:   TODO, IN_PROGRESS, DONE
Priorities: LOW, MEDIUM, HIGH

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
