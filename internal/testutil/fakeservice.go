// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"ttrack/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Backend for
// testing.
type FakeService struct {
	mu     sync.RWMutex
	nextID int64
	tasks  []service.Task

	// Accounts maps username to password for Login.
	Accounts map[string]string

	// LoginMessage is the backend message for rejected credentials;
	// empty means the backend supplied none.
	LoginMessage string

	// Assistant behavior
	Available   bool
	ParseResp   service.ParseResult
	Recommended service.Priority
	Insight     string
	Suggested   service.Suggestions

	// Error injection for testing
	LoginErr       error
	ListTasksErr   error
	GetTaskErr     error
	CreateTaskErr  error
	UpdateTaskErr  error
	DeleteTaskErr  error
	StatsErr       error
	AIStatusErr    error
	ParseTaskErr   error
	RecommendErr   error
	InsightErr     error
	SuggestionsErr error
}

// NewFakeService creates a FakeService with one known account.
func NewFakeService() *FakeService {
	return &FakeService{
		Accounts: map[string]string{"demo": "demo123"},
	}
}

// AddTask adds a task and returns its assigned id.
func (f *FakeService) AddTask(title, description string, status service.Status, priority service.Priority) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.tasks = append(f.tasks, service.Task{
		ID:          f.nextID,
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
	})
	return f.nextID
}

// SetTimestamps sets creation and completion times on a stored task.
func (f *FakeService) SetTimestamps(id int64, created, completed *time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].CreatedAt = created
			f.tasks[i].CompletedAt = completed
			return
		}
	}
}

// Tasks returns a copy of the stored tasks.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Login implements service.Authenticator.
func (f *FakeService) Login(ctx context.Context, username, password string) (service.LoginResult, error) {
	if f.LoginErr != nil {
		return service.LoginResult{}, f.LoginErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if pw, ok := f.Accounts[username]; !ok || pw != password {
		return service.LoginResult{}, &service.AuthError{Message: f.LoginMessage}
	}
	return service.LoginResult{
		Token:    "fake-token-" + username,
		Username: username,
		Email:    username + "@example.com",
		Message:  "Login successful",
	}, nil
}

// ListTasks implements service.Tasks.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.Tasks(), nil
}

// GetTask implements service.Tasks.
func (f *FakeService) GetTask(ctx context.Context, id int64) (service.Task, error) {
	if f.GetTaskErr != nil {
		return service.Task{}, f.GetTaskErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return service.Task{}, ErrNotFound
}

// CreateTask implements service.Tasks.
func (f *FakeService) CreateTask(ctx context.Context, task service.Task) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	task.ID = f.nextID
	now := time.Now()
	task.CreatedAt = &now
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Tasks. Completion is stamped on the
// transition to DONE, the way the backend does it.
func (f *FakeService) UpdateTask(ctx context.Context, id int64, task service.Task) (service.Task, error) {
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID != id {
			continue
		}
		task.ID = id
		task.CreatedAt = f.tasks[i].CreatedAt
		if task.Status == service.StatusDone && f.tasks[i].Status != service.StatusDone {
			now := time.Now()
			task.CompletedAt = &now
		} else if task.Status != service.StatusDone {
			task.CompletedAt = nil
		} else {
			task.CompletedAt = f.tasks[i].CompletedAt
		}
		f.tasks[i] = task
		return task, nil
	}
	return service.Task{}, ErrNotFound
}

// DeleteTask implements service.Tasks.
func (f *FakeService) DeleteTask(ctx context.Context, id int64) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Stats implements service.Tasks, derived from the stored tasks.
func (f *FakeService) Stats(ctx context.Context) (service.Stats, error) {
	if f.StatsErr != nil {
		return service.Stats{}, f.StatsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var stats service.Stats
	stats.TotalTasks = len(f.tasks)
	for _, t := range f.tasks {
		switch t.Status {
		case service.StatusTodo:
			stats.TodoTasks++
		case service.StatusInProgress:
			stats.InProgressTasks++
		case service.StatusDone:
			stats.CompletedTasks++
		}
	}
	stats.PendingTasks = stats.TodoTasks + stats.InProgressTasks
	return stats, nil
}

// AIStatus implements service.Assistant.
func (f *FakeService) AIStatus(ctx context.Context) (service.AIStatus, error) {
	if f.AIStatusErr != nil {
		return service.AIStatus{}, f.AIStatusErr
	}
	return service.AIStatus{Available: f.Available, Provider: "fake", Model: "fake-1"}, nil
}

// ParseTask implements service.Assistant.
func (f *FakeService) ParseTask(ctx context.Context, text string) (service.ParseResult, error) {
	if f.ParseTaskErr != nil {
		return service.ParseResult{}, f.ParseTaskErr
	}
	return f.ParseResp, nil
}

// RecommendPriority implements service.Assistant.
func (f *FakeService) RecommendPriority(ctx context.Context, title, description string) (service.Priority, error) {
	if f.RecommendErr != nil {
		return "", f.RecommendErr
	}
	return f.Recommended, nil
}

// ProductivityInsight implements service.Assistant.
func (f *FakeService) ProductivityInsight(ctx context.Context) (string, error) {
	if f.InsightErr != nil {
		return "", f.InsightErr
	}
	return f.Insight, nil
}

// TaskSuggestions implements service.Assistant.
func (f *FakeService) TaskSuggestions(ctx context.Context) (service.Suggestions, error) {
	if f.SuggestionsErr != nil {
		return service.Suggestions{}, f.SuggestionsErr
	}
	return f.Suggested, nil
}
