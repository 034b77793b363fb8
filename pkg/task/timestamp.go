package task

import (
	"encoding/json"
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time with RFC3339 JSON encoding. Creation
// timestamps exist for tie-breaking and display, never for ordering.
type Timestamp struct {
	time.Time
}

func (t Timestamp) SameDay(then time.Time) bool {
	return t.Local().Day() == then.Local().Day() &&
		t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year()
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// Date is a calendar date with no time component, used for due dates.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from the calendar day of t, in t's location.
func NewDate(t time.Time) *Date {
	y, m, d := t.Date()
	return &Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO date such as "2024-02-28".
func ParseDate(v string) (*Date, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return nil, err
	}
	return NewDate(t), nil
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func (d Date) String() string {
	return d.Time().Format(layoutISO)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d)), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	parsed, err := ParseDate(v)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}
