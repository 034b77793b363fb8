package task

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// New creates a task with the given text and sensible defaults: not
// completed, medium priority, no due date, no tags.
func New(text string) *Item {
	return &Item{
		ID:       uuid.NewString(),
		Text:     text,
		Priority: Medium,
		Created:  Timestamp{Time: time.Now()},
	}
}

// Item is a single task. An Item is owned by exactly one list at a time;
// its ID is unique across the whole workspace.
type Item struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Done     bool      `json:"done,omitempty"`
	Priority Priority  `json:"priority"`
	Due      *Date     `json:"due,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
	Created  Timestamp `json:"created"`
}

// AddTag appends a tag unless an equal tag (case-insensitive) is already
// present. Reports whether the tag set changed.
func (i *Item) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, t := range i.Tags {
		if strings.EqualFold(t, tag) {
			return false
		}
	}
	i.Tags = append(i.Tags, tag)
	return true
}

// RemoveTag removes the tag matching case-insensitively. Reports whether
// the tag set changed.
func (i *Item) RemoveTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	for n, t := range i.Tags {
		if strings.EqualFold(t, tag) {
			i.Tags = append(i.Tags[:n], i.Tags[n+1:]...)
			return true
		}
	}
	return false
}

// HasTag reports whether the item carries the tag, case-insensitively.
func (i *Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
