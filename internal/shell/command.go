package shell

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/store"
)

// Messages shown after a command runs.
const (
	MsgAdded         = "Task added successfully!"
	MsgDuplicateID   = "Task with this ID '%s' already exists"
	MsgUpdated       = "Task updated"
	MsgNotFound      = "Task not found!"
	MsgDeleted       = "Task deleted!"
	MsgCompleted     = "Task marked as complete!"
	MsgInvalidDate   = "Invalid date!"
	MsgInvalidChoice = "Invalid choice!"
	MsgCancelled     = "Cancelled."
)

// View titles.
const (
	TitleAll        = "=== ALL TASKS ==="
	TitleByDate     = "=== TASKS SORTED BY DATE ==="
	TitleByPriority = "=== TASKS SORTED BY PRIORITY ==="
)

// ErrInvalidCommand is returned when a command fails presence validation.
var ErrInvalidCommand = errors.New("invalid command")

// Result is what a command hands back for display.
type Result struct {
	// Message is set by commands that change the store.
	Message string
	// Title, Tasks and ShowTotal are set by view commands.
	Title     string
	Tasks     []models.Task
	ShowTotal bool
}

// IsView reports whether r holds a task listing.
func (r Result) IsView() bool {
	return r.Title != ""
}

// Command is one fully collected user request. Execute performs exactly one
// store operation.
type Command interface {
	Execute(s store.TaskStore) (Result, error)
	// Op names the command in logs.
	Op() string
	// TaskID is the ID the command targets, empty for views.
	TaskID() string
}

// AddCommand creates a task.
type AddCommand struct {
	ID       string    `validate:"required"`
	Name     string    `validate:"required"`
	DueDate  time.Time
	Priority models.Priority
}

func (c AddCommand) Op() string     { return "add" }
func (c AddCommand) TaskID() string { return c.ID }

func (c AddCommand) Execute(s store.TaskStore) (Result, error) {
	if err := validateCommand(c); err != nil {
		return Result{}, err
	}
	if err := s.Add(c.ID, c.Name, c.DueDate, c.Priority); err != nil {
		return Result{}, err
	}
	return Result{Message: MsgAdded}, nil
}

// EditCommand replaces name, due date and priority of a task.
type EditCommand struct {
	ID       string    `validate:"required"`
	Name     string    `validate:"required"`
	DueDate  time.Time
	Priority models.Priority
}

func (c EditCommand) Op() string     { return "edit" }
func (c EditCommand) TaskID() string { return c.ID }

func (c EditCommand) Execute(s store.TaskStore) (Result, error) {
	if err := validateCommand(c); err != nil {
		return Result{}, err
	}
	if err := s.Edit(c.ID, c.Name, c.DueDate, c.Priority); err != nil {
		return Result{}, err
	}
	return Result{Message: MsgUpdated}, nil
}

// DeleteCommand removes a task.
type DeleteCommand struct {
	ID string
}

func (c DeleteCommand) Op() string     { return "delete" }
func (c DeleteCommand) TaskID() string { return c.ID }

func (c DeleteCommand) Execute(s store.TaskStore) (Result, error) {
	if err := s.Delete(c.ID); err != nil {
		return Result{}, err
	}
	return Result{Message: MsgDeleted}, nil
}

// CompleteCommand marks a task as completed.
type CompleteCommand struct {
	ID string
}

func (c CompleteCommand) Op() string     { return "complete" }
func (c CompleteCommand) TaskID() string { return c.ID }

func (c CompleteCommand) Execute(s store.TaskStore) (Result, error) {
	if err := s.MarkComplete(c.ID); err != nil {
		return Result{}, err
	}
	return Result{Message: MsgCompleted}, nil
}

// ViewOrder selects one of the list views.
type ViewOrder int

const (
	ViewAll ViewOrder = iota
	ViewByDate
	ViewByPriority
)

// Title returns the heading printed above the view.
func (o ViewOrder) Title() string {
	switch o {
	case ViewByDate:
		return TitleByDate
	case ViewByPriority:
		return TitleByPriority
	default:
		return TitleAll
	}
}

// ViewCommand lists tasks in the selected order.
type ViewCommand struct {
	Order ViewOrder
}

func (c ViewCommand) Op() string     { return "view" }
func (c ViewCommand) TaskID() string { return "" }

func (c ViewCommand) Execute(s store.TaskStore) (Result, error) {
	res := Result{Title: c.Order.Title()}
	switch c.Order {
	case ViewByDate:
		res.Tasks = s.ListByDate()
	case ViewByPriority:
		res.Tasks = s.ListByPriority()
	default:
		res.Tasks = s.ListAll()
		res.ShowTotal = true
	}
	return res, nil
}

func validateCommand(c any) error {
	if err := models.ValidateStruct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}
	return nil
}

// FailureMessage turns a command error into the line shown to the user.
func FailureMessage(cmd Command, err error) string {
	switch {
	case errors.Is(err, store.ErrDuplicateID):
		return fmt.Sprintf(MsgDuplicateID, cmd.TaskID())
	case errors.Is(err, store.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, ErrInvalidCommand):
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return "Invalid input: missing " + strings.Join(verr.Fields, ", ")
		}
		return "Invalid input!"
	default:
		return err.Error()
	}
}
