package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"ttrack/internal/service"
)

// AIStatus implements service.Assistant.
func (c *Client) AIStatus(ctx context.Context) (service.AIStatus, error) {
	var status service.AIStatus
	if err := c.do(ctx, http.MethodGet, "/ai/status", nil, nil, &status); err != nil {
		return service.AIStatus{}, wrapError(err)
	}
	return status, nil
}

// ParseTask implements service.Assistant. The backend answers either
// with a JSON object of task fields or with a JSON string that itself
// contains the JSON; any other shape is a parse failure.
func (c *Client) ParseTask(ctx context.Context, text string) (service.ParseResult, error) {
	body := map[string]string{"text": text}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/ai/parse-task", nil, body, &raw); err != nil {
		return service.ParseResult{}, wrapError(err)
	}
	return decodeParsePayload(raw)
}

// RecommendPriority implements service.Assistant.
func (c *Client) RecommendPriority(ctx context.Context, title, description string) (service.Priority, error) {
	query := url.Values{}
	query.Set("title", title)
	if description != "" {
		query.Set("description", description)
	}

	var res struct {
		RecommendedPriority string `json:"recommendedPriority"`
		Title               string `json:"title"`
	}
	if err := c.do(ctx, http.MethodGet, "/ai/recommend-priority", query, nil, &res); err != nil {
		return "", wrapError(err)
	}

	p, ok := service.ParsePriority(res.RecommendedPriority)
	if !ok {
		return "", fmt.Errorf("unrecognized priority: %q", res.RecommendedPriority)
	}
	return p, nil
}

// ProductivityInsight implements service.Assistant.
func (c *Client) ProductivityInsight(ctx context.Context) (string, error) {
	var res struct {
		Insight string `json:"insight"`
	}
	if err := c.do(ctx, http.MethodGet, "/ai/productivity-insight", nil, nil, &res); err != nil {
		return "", wrapError(err)
	}
	return res.Insight, nil
}

// TaskSuggestions implements service.Assistant.
func (c *Client) TaskSuggestions(ctx context.Context) (service.Suggestions, error) {
	var res service.Suggestions
	if err := c.do(ctx, http.MethodGet, "/ai/suggestions", nil, nil, &res); err != nil {
		return service.Suggestions{}, wrapError(err)
	}
	return res, nil
}

// decodeParsePayload accepts the two conforming parse-task shapes and
// rejects everything else.
func decodeParsePayload(raw json.RawMessage) (service.ParseResult, error) {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 {
		return service.ParseResult{}, fmt.Errorf("empty parse response")
	}

	// A string response wraps the real JSON one level deeper.
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return service.ParseResult{}, err
		}
		data = bytes.TrimSpace([]byte(inner))
	}

	if len(data) == 0 || data[0] != '{' {
		return service.ParseResult{}, fmt.Errorf("parse response is not an object")
	}

	var res service.ParseResult
	if err := json.Unmarshal(data, &res); err != nil {
		return service.ParseResult{}, err
	}
	return res, nil
}
