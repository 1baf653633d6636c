package store

import (
	"errors"
	"time"

	"github.com/josephgoksu/todolist/models"
)

var (
	// ErrDuplicateID is returned by Add when a task with the same ID is already stored.
	ErrDuplicateID = errors.New("duplicate task id")
	// ErrNotFound is returned when no task has the requested ID.
	ErrNotFound = errors.New("task not found")
)

// TaskStore defines the contract for holding tasks during a session.
// A failed operation leaves the collection exactly as it was.
type TaskStore interface {
	// Add appends a new, pending task.
	// It returns ErrDuplicateID if the ID is already taken.
	Add(id, name string, dueDate time.Time, priority models.Priority) error

	// Edit overwrites name, due date and priority of an existing task.
	// The ID and completion flag are left untouched.
	// It returns ErrNotFound if no task has this ID.
	Edit(id, name string, dueDate time.Time, priority models.Priority) error

	// Delete removes a task.
	// It returns ErrNotFound if no task has this ID.
	Delete(id string) error

	// MarkComplete flags a task as completed. Completing an already completed
	// task succeeds and changes nothing.
	// It returns ErrNotFound if no task has this ID.
	MarkComplete(id string) error

	// Exists reports whether a task with this ID is stored.
	Exists(id string) bool

	// Get returns a copy of the task with this ID, or ErrNotFound.
	Get(id string) (models.Task, error)

	// ListAll returns every task in insertion order.
	ListAll() []models.Task

	// ListByDate returns tasks ordered by due date, oldest first.
	// Tasks due on the same day keep their insertion order.
	ListByDate() []models.Task

	// ListByPriority returns tasks ordered high, medium, low, then anything else.
	// Tasks of equal rank keep their insertion order.
	ListByPriority() []models.Task

	// Len returns the number of stored tasks.
	Len() int
}
