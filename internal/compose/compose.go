// Package compose layers AI-assisted field extraction over manual task
// entry. Every operation here is advisory: failures degrade to the
// manual path and are logged, never fatal.
package compose

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"ttrack/internal/service"
)

// Composer drives the assisted composition of a task draft.
type Composer struct {
	ai  service.Assistant
	log zerolog.Logger
}

// New creates a composer over the given assistant.
func New(ai service.Assistant, log zerolog.Logger) *Composer {
	return &Composer{ai: ai, log: log}
}

// Available probes the assistant. The probe is advisory only: a failed
// probe hides the AI affordances and is logged, nothing more.
func (c *Composer) Available(ctx context.Context) bool {
	status, err := c.ai.AIStatus(ctx)
	if err != nil {
		c.log.Debug().Err(err).Msg("ai status probe failed")
		return false
	}
	if !status.Available {
		c.log.Debug().Str("provider", status.Provider).Msg("ai reported unavailable")
	}
	return status.Available
}

// Parse populates the draft from free text, one shot. On success the
// title, description and priority are overwritten with field-by-field
// fallbacks; on any assistant error the whole draft falls back to the
// text as title, leaving description and priority at their prior values.
// Never partially applied, never retried.
func (c *Composer) Parse(ctx context.Context, draft *service.Task, text string) {
	parsed, err := c.ai.ParseTask(ctx, text)
	if err != nil {
		c.log.Debug().Err(err).Msg("ai parse failed, using text as title")
		draft.Title = text
		return
	}

	if parsed.Title != "" {
		draft.Title = parsed.Title
	} else {
		draft.Title = text
	}
	draft.Description = parsed.Description
	if p, ok := service.ParsePriority(parsed.Priority); ok {
		draft.Priority = p
	} else {
		draft.Priority = service.PriorityMedium
	}
}

// RecommendPriority asks the assistant for a priority and overwrites
// only that field on success. On failure the draft is left entirely
// unchanged and the failure goes to the log alone.
func (c *Composer) RecommendPriority(ctx context.Context, draft *service.Task) {
	if strings.TrimSpace(draft.Title) == "" {
		return
	}
	p, err := c.ai.RecommendPriority(ctx, draft.Title, draft.Description)
	if err != nil {
		c.log.Debug().Err(err).Msg("ai priority recommendation failed")
		return
	}
	draft.Priority = p
}
