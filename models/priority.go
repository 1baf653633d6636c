package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PriorityLevel is the closed set of priority kinds a task can carry.
type PriorityLevel uint8

const (
	PriorityHigh PriorityLevel = iota + 1
	PriorityMedium
	PriorityLow
	PriorityOther
)

const (
	labelHigh   = "high"
	labelMedium = "medium"
	labelLow    = "low"
)

// Priority is a task priority. Known levels render with their canonical label;
// PriorityOther keeps whatever label the user typed.
type Priority struct {
	Level PriorityLevel
	label string
}

var (
	High   = Priority{Level: PriorityHigh, label: labelHigh}
	Medium = Priority{Level: PriorityMedium, label: labelMedium}
	Low    = Priority{Level: PriorityLow, label: labelLow}
)

// ParsePriority maps "high", "medium" and "low" to their levels.
// Any other string, including the empty one, is accepted as PriorityOther.
func ParsePriority(s string) Priority {
	switch s {
	case labelHigh:
		return High
	case labelMedium:
		return Medium
	case labelLow:
		return Low
	default:
		return Priority{Level: PriorityOther, label: s}
	}
}

// NormalizePriority trims and lower-cases raw user input before it is parsed.
func NormalizePriority(raw string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(raw))
}

// Rank is the sort key used by priority views: high=1, medium=2, low=3, anything else=4.
func (p Priority) Rank() int {
	switch p.Level {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return int(p.Level)
	default:
		return int(PriorityOther)
	}
}

// String returns the label shown to the user.
func (p Priority) String() string {
	return p.label
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.label), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	*p = ParsePriority(string(text))
	return nil
}
