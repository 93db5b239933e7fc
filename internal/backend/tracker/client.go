// Package tracker implements service.Backend against the task-tracker
// REST API.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ttrack/internal/config"
	"ttrack/internal/service"
	"ttrack/internal/session"
)

// DefaultTimeout bounds a single API call when the config supplies none.
const DefaultTimeout = 10 * time.Second

// Client talks to the tracker backend. Every outgoing request passes
// through the session transport, which attaches the bearer token when a
// session is live.
type Client struct {
	base    string
	http    *http.Client
	timeout time.Duration
	log     zerolog.Logger
}

// New creates a client for the configured backend, with its transport
// decorated by the request authorizer.
func New(cfg *config.Config, sessions *session.Manager) *Client {
	timeout := cfg.Env.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		base: strings.TrimRight(cfg.Env.APIBaseURL, "/"),
		http: &http.Client{
			Transport: &session.Transport{Auth: session.NewAuthorizer(sessions)},
		},
		timeout: timeout,
		log:     cfg.Log,
	}
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		base:    strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		timeout: DefaultTimeout,
		log:     zerolog.Nop(),
	}
}

// Login implements service.Authenticator.
func (c *Client) Login(ctx context.Context, username, password string) (service.LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var res service.LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &res)
	if err != nil {
		var apiErr *apiError
		if asAPIError(err, &apiErr) && apiErr.status >= 400 && apiErr.status < 500 {
			return service.LoginResult{}, &service.AuthError{Message: apiErr.message}
		}
		return service.LoginResult{}, err
	}
	return res, nil
}

// ListTasks implements service.Tasks.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, nil, &tasks); err != nil {
		return nil, wrapError(err)
	}
	return tasks, nil
}

// GetTask implements service.Tasks.
func (c *Client) GetTask(ctx context.Context, id int64) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, nil, &task); err != nil {
		return service.Task{}, wrapError(err)
	}
	return task, nil
}

// CreateTask implements service.Tasks.
func (c *Client) CreateTask(ctx context.Context, task service.Task) (service.Task, error) {
	var created service.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, task, &created); err != nil {
		return service.Task{}, wrapError(err)
	}
	return created, nil
}

// UpdateTask implements service.Tasks.
func (c *Client) UpdateTask(ctx context.Context, id int64, task service.Task) (service.Task, error) {
	var updated service.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), nil, task, &updated); err != nil {
		return service.Task{}, wrapError(err)
	}
	return updated, nil
}

// DeleteTask implements service.Tasks.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil, nil); err != nil {
		return wrapError(err)
	}
	return nil
}

// Stats implements service.Tasks.
func (c *Client) Stats(ctx context.Context) (service.Stats, error) {
	var stats service.Stats
	if err := c.do(ctx, http.MethodGet, "/tasks/stats", nil, nil, &stats); err != nil {
		return service.Stats{}, wrapError(err)
	}
	return stats, nil
}

// do issues one API call: marshal the body, attach headers, bound the
// call with the client timeout, and decode the response into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	c.log.Debug().Str("method", method).Str("path", path).Msg("api call")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apiError{status: resp.StatusCode, message: errorMessage(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// apiError carries the HTTP status and the backend's error message.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	if e.message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.status, e.message)
	}
	return fmt.Sprintf("backend returned %d", e.status)
}

func asAPIError(err error, target **apiError) bool {
	if e, ok := err.(*apiError); ok {
		*target = e
		return true
	}
	return false
}

// errorMessage extracts the backend's error text from a failure body.
func errorMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}

// wrapError maps API errors to user-facing messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *apiError
	if asAPIError(err, &apiErr) {
		switch apiErr.status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("token expired or revoked (run: ttrack login)")
		case http.StatusNotFound:
			return fmt.Errorf("not found")
		}
		return err
	}

	if strings.Contains(err.Error(), "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	return err
}
