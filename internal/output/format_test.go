package output_test

import (
	"bytes"
	"testing"
	"time"

	"ttrack/internal/output"
	"ttrack/internal/service"
)

func TestFormatCompletionTime(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"ninety seconds", 90 * time.Second, "1 minute"},
		{"zero", 0, "0 minutes"},
		{"under an hour", 45 * time.Minute, "45 minutes"},
		{"exactly one hour", time.Hour, "1 hour"},
		{"five hours", 5 * time.Hour, "5 hours"},
		{"just under a day", 23*time.Hour + 59*time.Minute, "23 hours"},
		{"thirty hours", 30 * time.Hour, "1 day"},
		{"three days", 80 * time.Hour, "3 days"},
	}

	for _, tc := range cases {
		done := t0.Add(tc.elapsed)
		got := output.FormatCompletionTime(&t0, &done)
		if got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestFormatCompletionTime_MissingTimestamps(t *testing.T) {
	t0 := time.Now()

	if got := output.FormatCompletionTime(nil, &t0); got != output.NoDuration {
		t.Errorf("missing created: expected %q, got %q", output.NoDuration, got)
	}
	if got := output.FormatCompletionTime(&t0, nil); got != output.NoDuration {
		t.Errorf("missing completed: expected %q, got %q", output.NoDuration, got)
	}
	if got := output.FormatCompletionTime(nil, nil); got != output.NoDuration {
		t.Errorf("both missing: expected %q, got %q", output.NoDuration, got)
	}
}

func TestFormatTask(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, service.Task{
		ID:       7,
		Title:    "Buy milk",
		Status:   service.StatusTodo,
		Priority: service.PriorityHigh,
	})

	want := "   7  TODO         HIGH    Buy milk\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatTask_DoneShowsDuration(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	completed := created.Add(5 * time.Hour)

	var buf bytes.Buffer
	output.FormatTask(&buf, service.Task{
		ID:          3,
		Title:       "Write report",
		Status:      service.StatusDone,
		Priority:    service.PriorityMedium,
		CreatedAt:   &created,
		CompletedAt: &completed,
	})

	want := "   3  DONE         MEDIUM  Write report  (done in 5 hours)\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatTask_UntitledAndNewlines(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, service.Task{ID: 1, Title: "  ", Status: service.StatusTodo, Priority: service.PriorityLow})
	if !bytes.Contains(buf.Bytes(), []byte("(untitled)")) {
		t.Errorf("blank title should render as (untitled), got %q", buf.String())
	}

	buf.Reset()
	output.FormatTask(&buf, service.Task{ID: 2, Title: "a\nb", Status: service.StatusTodo, Priority: service.PriorityLow})
	if !bytes.Contains(buf.Bytes(), []byte("a b")) {
		t.Errorf("newlines should become spaces, got %q", buf.String())
	}
}

func TestFormatStats(t *testing.T) {
	var buf bytes.Buffer
	output.FormatStats(&buf, service.Stats{
		TotalTasks:                 10,
		TodoTasks:                  4,
		InProgressTasks:            2,
		CompletedTasks:             4,
		PendingTasks:               6,
		AverageCompletionTimeHours: 3.2,
	})

	want := "total:           10\n" +
		"todo:            4\n" +
		"in progress:     2\n" +
		"done:            4\n" +
		"pending:         6\n" +
		"avg completion:  3.2 hours\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
