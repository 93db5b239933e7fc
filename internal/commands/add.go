package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ttrack/internal/compose"
	"ttrack/internal/config"
	"ttrack/internal/exitcode"
	"ttrack/internal/output"
	"ttrack/internal/service"
	"ttrack/internal/session"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command. With --ai the arguments are treated
// as free text to be parsed by the assistant; --recommend asks it for a
// priority on the finished draft. Both degrade to the manual path.
type AddCmd struct {
	description string
	priority    string
	status      string
	useAI       bool
	recommend   bool
}

// SetAI sets the AI flags (for testing).
func (c *AddCmd) SetAI(useAI, recommend bool) {
	c.useAI = useAI
	c.recommend = recommend
}

// SetFields sets the field flags (for testing).
func (c *AddCmd) SetFields(description, priority, status string) {
	c.description = description
	c.priority = priority
	c.status = status
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "ttrack add [--desc <text>] [--priority <p>] [--status <s>] [--ai] [--recommend] <title...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.status, "status", "", "")
	fs.BoolVar(&c.useAI, "ai", false, "")
	fs.BoolVar(&c.recommend, "recommend", false, "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Manager, svc service.Backend, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	draft := service.Task{
		Title:       text,
		Description: c.description,
		Status:      service.StatusTodo,
		Priority:    service.PriorityMedium,
	}

	if c.status != "" {
		status, ok := service.ParseStatus(c.status)
		if !ok {
			fmt.Fprintf(errOut, "error: invalid status: %s\n", c.status)
			return exitcode.UserError
		}
		draft.Status = status
	}
	if c.priority != "" {
		priority, ok := service.ParsePriority(c.priority)
		if !ok {
			fmt.Fprintf(errOut, "error: invalid priority: %s\n", c.priority)
			return exitcode.UserError
		}
		draft.Priority = priority
	}

	composer := compose.New(svc, cfg.Log)
	aiWanted := c.useAI || c.recommend
	aiAvailable := aiWanted && composer.Available(ctx)

	if c.useAI && aiAvailable {
		composer.Parse(ctx, &draft, text)
	}
	if c.recommend && aiAvailable {
		composer.RecommendPriority(ctx, &draft)
	}

	created, err := svc.CreateTask(ctx, draft)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		output.FormatTask(out, created)
	}
	return exitcode.Success
}
