// Package filter derives the visible subset of the cached task set from
// search, status and priority predicates.
package filter

import (
	"strings"

	"ttrack/internal/service"
)

// All matches every status or priority.
const All = "ALL"

// Predicate is the conjunctive criteria applied to the task set. The
// zero value with Status and Priority set to All matches everything.
type Predicate struct {
	// Search is a case-insensitive substring matched against title or
	// description. Empty matches everything.
	Search string

	// Status is All or an exact service.Status value.
	Status string

	// Priority is All or an exact service.Priority value.
	Priority string
}

// Default returns the identity predicate.
func Default() Predicate {
	return Predicate{Status: All, Priority: All}
}

// Matches reports whether the task passes all three tests.
func (p Predicate) Matches(t service.Task) bool {
	return p.matchesSearch(t) && p.matchesStatus(t) && p.matchesPriority(t)
}

func (p Predicate) matchesSearch(t service.Task) bool {
	term := strings.ToLower(p.Search)
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), term) {
		return true
	}
	// An absent description is an empty string and never matches a
	// non-empty term on its own.
	return strings.Contains(strings.ToLower(t.Description), term)
}

func (p Predicate) matchesStatus(t service.Task) bool {
	return p.Status == All || p.Status == "" || string(t.Status) == p.Status
}

func (p Predicate) matchesPriority(t service.Task) bool {
	return p.Priority == All || p.Priority == "" || string(t.Priority) == p.Priority
}

// Apply returns the tasks passing the predicate, preserving input order.
// It is a full pass over the set; no indexing.
func Apply(tasks []service.Task, p Predicate) []service.Task {
	var out []service.Task
	for _, t := range tasks {
		if p.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
