// Package ingest turns pasted or dropped plain text into tasks spread
// across one or more lists, following heading and bullet conventions.
// Parsing is a pure function over the input; applying the result to a
// workspace is the router's job.
package ingest

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"tableflip.dev/slate/pkg/task"
)

// Mode selects how lines are distributed when the target is Auto.
type Mode int

const (
	// ModeSingle routes every line to the active list.
	ModeSingle Mode = iota
	// ModeGroup scans for "Heading:" lines and buckets the lines
	// beneath each heading into a list of that name.
	ModeGroup
)

// ParseMode maps a mode name to a Mode.
func ParseMode(v string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "single", "":
		return ModeSingle, nil
	case "group":
		return ModeGroup, nil
	}
	return ModeSingle, fmt.Errorf("ingest: unknown mode %q", v)
}

// Target routes all produced tasks to one well-known list, overriding
// the mode. TargetAuto defers to the mode.
type Target int

const (
	TargetAuto Target = iota
	TargetInbox
	TargetToday
	TargetActive
)

// ParseTarget maps a target name to a Target.
func ParseTarget(v string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "auto", "":
		return TargetAuto, nil
	case "inbox":
		return TargetInbox, nil
	case "today":
		return TargetToday, nil
	case "active":
		return TargetActive, nil
	}
	return TargetAuto, fmt.Errorf("ingest: unknown target %q", v)
}

// Bucket is one destination and the tasks bound for it, in input order.
// Key is either an existing list id or a list name the router has yet
// to materialize.
type Bucket struct {
	Key   string
	Items []*task.Item
}

// Result is the parser output: buckets in first-appearance order.
type Result struct {
	Buckets []Bucket
}

// Empty reports whether parsing produced no tasks at all.
func (r *Result) Empty() bool {
	for _, b := range r.Buckets {
		if len(b.Items) > 0 {
			return false
		}
	}
	return true
}

func (r *Result) bucket(key string) *Bucket {
	for n := range r.Buckets {
		if r.Buckets[n].Key == key {
			return &r.Buckets[n]
		}
	}
	r.Buckets = append(r.Buckets, Bucket{Key: key})
	return &r.Buckets[len(r.Buckets)-1]
}

const untitled = "Untitled"

var numberedBullet = regexp.MustCompile(`^\d+\.\s+`)

// Parse converts raw text into buckets of new tasks. activeKey
// identifies the currently active list and is used by single mode and
// for group-mode lines that appear before the first heading. Fixed
// targets route by well-known list name; resolving or creating those
// lists is left to Apply. Empty or whitespace-only input yields an
// empty result. Each produced task gets a fresh id, the given text,
// medium priority, and a creation time of now.
func Parse(raw string, mode Mode, target Target, activeKey string, now time.Time) *Result {
	res := &Result{}
	lines := splitLines(raw)
	if len(lines) == 0 {
		return res
	}

	fixed := ""
	switch target {
	case TargetInbox:
		fixed = "Inbox"
	case TargetToday:
		fixed = "Today"
	case TargetActive:
		fixed = activeKey
	case TargetAuto:
		if mode == ModeSingle {
			fixed = activeKey
		}
	}

	// Fixed routing keeps every line verbatim; heading and bullet
	// conventions only apply when group mode does the bucketing.
	if fixed != "" {
		b := res.bucket(fixed)
		for _, line := range lines {
			b.Items = append(b.Items, newItem(line, now))
		}
		return res
	}

	// Group mode: headings open buckets; everything else is a task in
	// the current bucket, which starts out as the active list.
	current := ""
	for _, line := range lines {
		if name, ok := heading(line); ok {
			current = name
			res.bucket(current)
			continue
		}
		if current == "" {
			current = activeKey
		}
		b := res.bucket(current)
		b.Items = append(b.Items, newItem(stripBullet(line), now))
	}
	return res
}

func newItem(text string, now time.Time) *task.Item {
	it := task.New(text)
	it.Created = task.Timestamp{Time: now}
	return it
}

// splitLines normalizes line endings, trims each line, and drops
// empties.
func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// heading reports whether the line is "<text>:" (ASCII or full-width
// colon) with nothing after the colon, returning the list name. A bare
// colon or an otherwise-empty heading names the Untitled list.
func heading(line string) (string, bool) {
	var rest string
	switch {
	case strings.HasSuffix(line, ":"):
		rest = strings.TrimSuffix(line, ":")
	case strings.HasSuffix(line, "："):
		rest = strings.TrimSuffix(line, "：")
	default:
		return "", false
	}
	name := strings.TrimSpace(rest)
	if name == "" {
		name = untitled
	}
	return name, true
}

// stripBullet removes a leading "- ", "* ", "• ", or "<digits>. "
// marker, leaving other lines untouched.
func stripBullet(line string) string {
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker))
		}
	}
	if loc := numberedBullet.FindString(line); loc != "" {
		return strings.TrimSpace(strings.TrimPrefix(line, loc))
	}
	return line
}
