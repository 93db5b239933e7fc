// Package service defines the backend-agnostic interface for tracker operations.
package service

import (
	"strings"
	"time"
)

// Status is a task lifecycle state as the backend reports it.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Priority is a task priority level.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ParseStatus parses a status name case-insensitively.
// Accepts "in-progress" as well as "in_progress".
func ParseStatus(s string) (Status, bool) {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")) {
	case string(StatusTodo):
		return StatusTodo, true
	case string(StatusInProgress):
		return StatusInProgress, true
	case string(StatusDone):
		return StatusDone, true
	}
	return "", false
}

// ParsePriority parses a priority name case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(PriorityLow):
		return PriorityLow, true
	case string(PriorityMedium):
		return PriorityMedium, true
	case string(PriorityHigh):
		return PriorityHigh, true
	}
	return "", false
}

// Task represents a single task item. The backend owns the record; ID and
// the timestamps are absent until the backend assigns them.
type Task struct {
	ID          int64      `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Stats is the aggregate completion summary for the authenticated user.
type Stats struct {
	TotalTasks                 int     `json:"totalTasks"`
	CompletedTasks             int     `json:"completedTasks"`
	PendingTasks               int     `json:"pendingTasks"`
	TodoTasks                  int     `json:"todoTasks"`
	InProgressTasks            int     `json:"inProgressTasks"`
	AverageCompletionTimeHours float64 `json:"averageCompletionTimeHours"`
}

// LoginResult is the backend's successful login response.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// ParseResult holds the structured fields extracted from free text by the
// assistant. Consumed once to populate a task draft, then discarded.
type ParseResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// AIStatus reports whether the assistant is reachable and what backs it.
type AIStatus struct {
	Available bool   `json:"available"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	Cost      string `json:"cost"`
}

// Suggestions is the assistant's task-suggestion response.
type Suggestions struct {
	Suggestions []string `json:"suggestions"`
	Insight     string   `json:"insight"`
}
