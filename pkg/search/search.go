// Package search implements the query predicate used to filter tasks.
// It is stateless: the ordering model knows nothing about filtering,
// and the host UI disables drag while a query is active.
package search

import (
	"strings"

	"tableflip.dev/slate/pkg/task"
)

// Match reports whether the task satisfies the query. The query is
// whitespace-tokenized and case-insensitive; every token must match. A
// token prefixed with '#' must equal one of the task's tags exactly
// (after stripping the prefix); any other token must be a substring of
// the task text or equal one of its tags.
func Match(it *task.Item, query string) bool {
	if it == nil {
		return false
	}
	text := strings.ToLower(it.Text)
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if tag, ok := strings.CutPrefix(tok, "#"); ok {
			if !it.HasTag(tag) {
				return false
			}
			continue
		}
		if strings.Contains(text, tok) {
			continue
		}
		if !it.HasTag(tok) {
			return false
		}
	}
	return true
}

// Filter returns the tasks matching the query, preserving order.
func Filter(items []*task.Item, query string) []*task.Item {
	if strings.TrimSpace(query) == "" {
		return items
	}
	out := make([]*task.Item, 0, len(items))
	for _, it := range items {
		if Match(it, query) {
			out = append(out, it)
		}
	}
	return out
}
