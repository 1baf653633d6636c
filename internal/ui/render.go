package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todolist/models"
)

// EmptyListMessage is printed by list views when there is nothing to show.
const EmptyListMessage = "No tasks found."

// Renderer turns tasks and status messages into text.
// With Color off every method returns plain text.
type Renderer struct {
	Color bool
	Table bool
}

func (r Renderer) paint(style lipgloss.Style, s string) string {
	if !r.Color {
		return s
	}
	return style.Render(s)
}

func (r Renderer) Success(msg string) string { return r.paint(StyleSuccess, msg) }
func (r Renderer) Error(msg string) string   { return r.paint(StyleError, msg) }
func (r Renderer) Warning(msg string) string { return r.paint(StyleWarning, msg) }
func (r Renderer) Subtle(msg string) string  { return r.paint(StyleSubtle, msg) }
func (r Renderer) Header(msg string) string  { return r.paint(StyleHeader, msg) }

// Marker renders the completion marker of t.
func (r Renderer) Marker(t models.Task) string {
	if t.IsCompleted {
		return r.paint(StyleDone, t.Marker())
	}
	return r.paint(StylePending, t.Marker())
}

// Priority renders a priority label in its color.
func (r Renderer) Priority(p models.Priority) string {
	return r.paint(PriorityStyle(p), p.String())
}

// TaskLine renders t in the one-line format. Without color it equals t.Line().
func (r Renderer) TaskLine(t models.Task) string {
	if !r.Color {
		return t.Line()
	}
	return fmt.Sprintf("%s. %s %s | Due: %s | Priority: %s",
		t.ID, r.Marker(t), t.Name, t.DueString(), r.Priority(t.Priority))
}

// TaskTable renders tasks as a table.
func (r Renderer) TaskTable(tasks []models.Task) string {
	table := &Table{
		Headers:  []string{"ID", "Status", "Name", "Due", "Priority"},
		MaxWidth: 40,
		Styled:   r.Color,
	}
	for _, t := range tasks {
		table.Rows = append(table.Rows, []string{t.ID, t.Marker(), t.Name, t.DueString(), t.Priority.String()})
	}
	return table.Render()
}

// TaskList renders a titled list view. showTotal appends the task count.
func (r Renderer) TaskList(title string, tasks []models.Task, showTotal bool) string {
	var sb strings.Builder
	sb.WriteString(r.Header(title) + "\n")

	if len(tasks) == 0 {
		sb.WriteString(r.Subtle(EmptyListMessage) + "\n")
		return sb.String()
	}

	if r.Table {
		sb.WriteString(r.TaskTable(tasks))
	} else {
		for _, t := range tasks {
			sb.WriteString(r.TaskLine(t) + "\n")
		}
	}

	if showTotal {
		sb.WriteString(fmt.Sprintf("\nTotal: %d tasks\n", len(tasks)))
	}
	return sb.String()
}
