// Package service defines the backend-agnostic interface for tracker operations.
package service

import "context"

// Authenticator exchanges credentials for a signed-in identity.
type Authenticator interface {
	// Login authenticates with the backend. Bad credentials are reported
	// as *AuthError; anything else is a transport or backend failure.
	Login(ctx context.Context, username, password string) (LoginResult, error)
}

// Tasks defines the task backend operations. All REST calls go through
// this interface; commands never build HTTP requests directly.
type Tasks interface {
	// ListTasks returns the user's tasks in backend order.
	ListTasks(ctx context.Context) ([]Task, error)

	// GetTask returns a single task by id.
	GetTask(ctx context.Context, id int64) (Task, error)

	// CreateTask creates a task and returns it with the backend-assigned
	// id and timestamps.
	CreateTask(ctx context.Context, task Task) (Task, error)

	// UpdateTask replaces the task with the given id.
	UpdateTask(ctx context.Context, id int64, task Task) (Task, error)

	// DeleteTask permanently deletes a task.
	DeleteTask(ctx context.Context, id int64) error

	// Stats returns the aggregate completion statistics.
	Stats(ctx context.Context) (Stats, error)
}

// Assistant defines the advisory AI operations. Every method can fail
// without consequence for primary task management.
type Assistant interface {
	// AIStatus probes the assistant's availability.
	AIStatus(ctx context.Context) (AIStatus, error)

	// ParseTask turns free text into structured task fields.
	ParseTask(ctx context.Context, text string) (ParseResult, error)

	// RecommendPriority suggests a priority for the given title and
	// optional description.
	RecommendPriority(ctx context.Context, title, description string) (Priority, error)

	// ProductivityInsight returns a short piece of advice derived from
	// the user's task history.
	ProductivityInsight(ctx context.Context) (string, error)

	// TaskSuggestions returns suggested task titles plus an insight.
	TaskSuggestions(ctx context.Context) (Suggestions, error)
}

// Backend is the full collaborator surface a command may use.
type Backend interface {
	Authenticator
	Tasks
	Assistant
}
