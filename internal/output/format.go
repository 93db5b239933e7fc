// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"ttrack/internal/service"
)

// NoDuration is printed when a completion duration cannot be computed.
const NoDuration = "no duration available"

// FormatTask formats one task line.
// Format: "{ID:>4}  {STATUS:<11}  {PRIORITY:<6}  {TITLE}", with the
// completion duration appended for finished tasks that carry both
// timestamps.
func FormatTask(w io.Writer, task service.Task) {
	title := normalizeTitle(task.Title)
	line := fmt.Sprintf("%4d  %-11s  %-6s  %s", task.ID, task.Status, task.Priority, title)
	if task.Status == service.StatusDone && task.CreatedAt != nil && task.CompletedAt != nil {
		line += fmt.Sprintf("  (done in %s)", FormatCompletionTime(task.CreatedAt, task.CompletedAt))
	}
	fmt.Fprintln(w, line)
}

// FormatTaskDetail prints the full record of a single task.
func FormatTaskDetail(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "id:          %d\n", task.ID)
	fmt.Fprintf(w, "title:       %s\n", normalizeTitle(task.Title))
	fmt.Fprintf(w, "description: %s\n", task.Description)
	fmt.Fprintf(w, "status:      %s\n", task.Status)
	fmt.Fprintf(w, "priority:    %s\n", task.Priority)
	if task.CreatedAt != nil {
		fmt.Fprintf(w, "created:     %s\n", task.CreatedAt.Format(time.RFC3339))
	}
	if task.CompletedAt != nil {
		fmt.Fprintf(w, "completed:   %s (%s)\n",
			task.CompletedAt.Format(time.RFC3339),
			FormatCompletionTime(task.CreatedAt, task.CompletedAt))
	}
}

// FormatStats prints the aggregate completion summary.
func FormatStats(w io.Writer, stats service.Stats) {
	fmt.Fprintf(w, "total:           %d\n", stats.TotalTasks)
	fmt.Fprintf(w, "todo:            %d\n", stats.TodoTasks)
	fmt.Fprintf(w, "in progress:     %d\n", stats.InProgressTasks)
	fmt.Fprintf(w, "done:            %d\n", stats.CompletedTasks)
	fmt.Fprintf(w, "pending:         %d\n", stats.PendingTasks)
	fmt.Fprintf(w, "avg completion:  %.1f hours\n", stats.AverageCompletionTimeHours)
}

// FormatCompletionTime renders the time between creation and completion.
// Under an hour it is counted in minutes, under a day in hours, and in
// days beyond that, always truncated toward zero. Only a count of
// exactly 1 takes the singular noun.
func FormatCompletionTime(created, completed *time.Time) string {
	if created == nil || completed == nil {
		return NoDuration
	}

	elapsed := completed.Sub(*created)
	minutes := int64(elapsed.Minutes())
	if minutes < 60 {
		return pluralize(minutes, "minute")
	}
	hours := int64(elapsed.Hours())
	if hours < 24 {
		return pluralize(hours, "hour")
	}
	return pluralize(hours/24, "day")
}

func pluralize(n int64, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
