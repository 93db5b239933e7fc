package compose_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"ttrack/internal/compose"
	"ttrack/internal/service"
	"ttrack/internal/testutil"
)

func newDraft() service.Task {
	return service.Task{
		Title:       "",
		Description: "manual description",
		Status:      service.StatusTodo,
		Priority:    service.PriorityLow,
	}
}

func TestAvailable(t *testing.T) {
	svc := testutil.NewFakeService()
	composer := compose.New(svc, zerolog.Nop())

	if composer.Available(context.Background()) {
		t.Error("probe reporting unavailable should gate AI off")
	}

	svc.Available = true
	if !composer.Available(context.Background()) {
		t.Error("expected availability")
	}

	svc.AIStatusErr = errors.New("connection refused")
	if composer.Available(context.Background()) {
		t.Error("failed probe must read as unavailable, not as an error")
	}
}

func TestParse_SuccessOverwritesDraft(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ParseResp = service.ParseResult{
		Title:       "Buy groceries",
		Description: "milk and eggs",
		Priority:    "HIGH",
	}
	composer := compose.New(svc, zerolog.Nop())

	draft := newDraft()
	composer.Parse(context.Background(), &draft, "buy milk and eggs tomorrow")

	if draft.Title != "Buy groceries" {
		t.Errorf("title: got %q", draft.Title)
	}
	if draft.Description != "milk and eggs" {
		t.Errorf("description: got %q", draft.Description)
	}
	if draft.Priority != service.PriorityHigh {
		t.Errorf("priority: got %q", draft.Priority)
	}
}

func TestParse_FieldFallbacks(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ParseResp = service.ParseResult{} // empty result, still a success
	composer := compose.New(svc, zerolog.Nop())

	draft := newDraft()
	composer.Parse(context.Background(), &draft, "water the plants")

	if draft.Title != "water the plants" {
		t.Errorf("empty parsed title should fall back to the text, got %q", draft.Title)
	}
	if draft.Description != "" {
		t.Errorf("absent description should become empty, got %q", draft.Description)
	}
	if draft.Priority != service.PriorityMedium {
		t.Errorf("absent priority should become MEDIUM, got %q", draft.Priority)
	}
}

func TestParse_UnrecognizedPriorityFallsBackToMedium(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ParseResp = service.ParseResult{Title: "x", Priority: "URGENT"}
	composer := compose.New(svc, zerolog.Nop())

	draft := newDraft()
	composer.Parse(context.Background(), &draft, "x")

	if draft.Priority != service.PriorityMedium {
		t.Errorf("unrecognized priority should become MEDIUM, got %q", draft.Priority)
	}
}

func TestParse_FailureFallsBackToTextTitle(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ParseTaskErr = errors.New("model overloaded")
	composer := compose.New(svc, zerolog.Nop())

	draft := newDraft()
	composer.Parse(context.Background(), &draft, "call the dentist")

	if draft.Title != "call the dentist" {
		t.Errorf("failure must use the text verbatim as title, got %q", draft.Title)
	}
	// Description and priority keep their pre-parse values.
	if draft.Description != "manual description" {
		t.Errorf("description must stay untouched, got %q", draft.Description)
	}
	if draft.Priority != service.PriorityLow {
		t.Errorf("priority must stay untouched, got %q", draft.Priority)
	}
}

func TestRecommendPriority_SuccessOverwritesOnlyPriority(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Recommended = service.PriorityHigh
	composer := compose.New(svc, zerolog.Nop())

	draft := newDraft()
	draft.Title = "Fix production outage"
	composer.RecommendPriority(context.Background(), &draft)

	if draft.Priority != service.PriorityHigh {
		t.Errorf("expected recommended priority, got %q", draft.Priority)
	}
	if draft.Title != "Fix production outage" || draft.Description != "manual description" {
		t.Error("only the priority field may change")
	}
}

func TestRecommendPriority_FailureLeavesDraftUnchanged(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.RecommendErr = errors.New("quota exceeded")
	composer := compose.New(svc, zerolog.Nop())

	draft := newDraft()
	draft.Title = "Fix production outage"
	before := draft
	composer.RecommendPriority(context.Background(), &draft)

	if draft != before {
		t.Errorf("failed recommendation must not touch the draft: %+v", draft)
	}
}

func TestRecommendPriority_EmptyTitleIsNoop(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Recommended = service.PriorityHigh
	composer := compose.New(svc, zerolog.Nop())

	draft := newDraft()
	before := draft
	composer.RecommendPriority(context.Background(), &draft)

	if draft != before {
		t.Error("recommendation requires a non-empty title")
	}
}
