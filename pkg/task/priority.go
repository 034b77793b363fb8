package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Priority orders tasks by importance. The zero value is Medium so that
// items decoded from older payloads without a priority stay in the middle.
type Priority int

const (
	Medium Priority = iota
	Low
	High
)

func (p Priority) String() string {
	switch p {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	}
	return "medium"
}

// ParsePriority maps a priority name (or common shorthand) to a Priority.
func ParsePriority(v string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "low", "l":
		return Low, nil
	case "medium", "med", "m", "":
		return Medium, nil
	case "high", "h":
		return High, nil
	}
	return Medium, fmt.Errorf("task: unknown priority %q", v)
}

func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Priority) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	parsed, err := ParsePriority(v)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
