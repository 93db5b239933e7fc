package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ttrack/internal/config"
	"ttrack/internal/exitcode"
	"ttrack/internal/filter"
	"ttrack/internal/output"
	"ttrack/internal/service"
	"ttrack/internal/session"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command. The task set is fetched whole and
// filtered client-side.
type ListCmd struct {
	search   string
	status   string
	priority string
}

// SetFilters sets the filter flags (for testing).
func (c *ListCmd) SetFilters(search, status, priority string) {
	c.search = search
	c.status = status
	c.priority = priority
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "ttrack list [--search <term>] [--status <s>] [--priority <p>]"
}
func (c *ListCmd) NeedsAuth() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.search, "search", "", "")
	fs.StringVar(&c.search, "s", "", "")
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Manager, svc service.Backend, args []string, out, errOut io.Writer) int {
	pred := filter.Default()
	pred.Search = c.search

	if c.status != "" {
		status, ok := service.ParseStatus(c.status)
		if !ok && c.status != filter.All && c.status != "all" {
			fmt.Fprintf(errOut, "error: invalid status: %s\n", c.status)
			return exitcode.UserError
		}
		if ok {
			pred.Status = string(status)
		}
	}

	if c.priority != "" {
		priority, ok := service.ParsePriority(c.priority)
		if !ok && c.priority != filter.All && c.priority != "all" {
			fmt.Fprintf(errOut, "error: invalid priority: %s\n", c.priority)
			return exitcode.UserError
		}
		if ok {
			pred.Priority = string(priority)
		}
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	filtered := filter.Apply(tasks, pred)
	if len(filtered) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for _, task := range filtered {
		output.FormatTask(out, task)
	}
	return exitcode.Success
}
