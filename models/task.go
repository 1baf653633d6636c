package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the dd.mm.yyyy layout used for both input and display of due dates.
const DateLayout = "02.01.2006"

const (
	markerCompleted  = "[finish]"
	markerInProgress = "[in progress]"
)

// Task represents a single to-do item.
type Task struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DueDate     time.Time `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	IsCompleted bool      `json:"isCompleted"`
}

// NewTask creates a pending task. The due date is truncated to a calendar date.
func NewTask(id, name string, dueDate time.Time, priority Priority) Task {
	return Task{
		ID:       id,
		Name:     name,
		DueDate:  DateOnly(dueDate),
		Priority: priority,
	}
}

// Marker returns the completion marker shown in front of the task name.
func (t Task) Marker() string {
	if t.IsCompleted {
		return markerCompleted
	}
	return markerInProgress
}

// DueString formats the due date as dd.mm.yyyy.
func (t Task) DueString() string {
	return t.DueDate.Format(DateLayout)
}

// Line renders the task on a single line:
//
//	1. [in progress] Buy milk | Due: 01.03.2024 | Priority: high
func (t Task) Line() string {
	return fmt.Sprintf("%s. %s %s | Due: %s | Priority: %s", t.ID, t.Marker(), t.Name, t.DueString(), t.Priority)
}

// DateOnly drops the clock part of t, keeping the calendar date it names.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDueDate parses a dd.mm.yyyy date. Day and month must be two digits.
func ParseDueDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q: %w", s, err)
	}
	return d, nil
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidationError lists the fields that failed struct validation.
type ValidationError struct {
	Fields []string
	msg    string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// ValidateStruct performs validation on any struct that has validation tags.
// Tag failures are returned as a *ValidationError.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	verr := &ValidationError{}
	errorMessages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		verr.Fields = append(verr.Fields, e.Field())
		errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	verr.msg = strings.Join(errorMessages, "; ")
	return verr
}
