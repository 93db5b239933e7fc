package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ttrack/internal/config"
	"ttrack/internal/exitcode"
	"ttrack/internal/output"
	"ttrack/internal/service"
	"ttrack/internal/session"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command: read, apply overrides, put back.
type EditCmd struct {
	title       string
	description string
	status      string
	priority    string
}

// SetFields sets the field flags (for testing).
func (c *EditCmd) SetFields(title, description, status, priority string) {
	c.title = title
	c.description = description
	c.status = status
	c.priority = priority
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "ttrack edit [--title <t>] [--desc <d>] [--status <s>] [--priority <p>] <id>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Manager, svc service.Backend, args []string, out, errOut io.Writer) int {
	id, err := parseTaskID(args)
	if err != nil {
		if err == ErrTaskIDRequired {
			fmt.Fprintln(errOut, "error: task id required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	if c.title == "" && c.description == "" && c.status == "" && c.priority == "" {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}

	task, err := svc.GetTask(ctx, id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Fprintf(errOut, "error: task not found: %d\n", id)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if c.title != "" {
		task.Title = c.title
	}
	if c.description != "" {
		task.Description = c.description
	}
	if c.status != "" {
		status, ok := service.ParseStatus(c.status)
		if !ok {
			fmt.Fprintf(errOut, "error: invalid status: %s\n", c.status)
			return exitcode.UserError
		}
		task.Status = status
	}
	if c.priority != "" {
		priority, ok := service.ParsePriority(c.priority)
		if !ok {
			fmt.Fprintf(errOut, "error: invalid priority: %s\n", c.priority)
			return exitcode.UserError
		}
		task.Priority = priority
	}

	updated, err := svc.UpdateTask(ctx, id, task)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		output.FormatTask(out, updated)
	}
	return exitcode.Success
}
