package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/models"
)

const (
	fieldID = iota
	fieldName
	fieldDue
	fieldPriority
	fieldCount
)

var fieldLabels = [fieldCount]string{"ID", "Name", "Due date (dd.mm.yyyy)", "Priority (high/medium/low)"}

// taskForm collects the fields of an add or edit. When editing, the ID is fixed.
type taskForm struct {
	editing bool
	inputs  [fieldCount]textinput.Model
	focus   int
}

func newTaskForm() taskForm {
	var f taskForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = fieldLabels[i] + ": "
		ti.CharLimit = 128
		ti.Width = 40
		f.inputs[i] = ti
	}
	f.inputs[fieldID].Placeholder = "blank for a generated ID"
	f.inputs[fieldDue].Placeholder = "01.03.2024"
	f.focus = fieldID
	f.inputs[fieldID].Focus()
	return f
}

func newEditForm(t models.Task) taskForm {
	f := newTaskForm()
	f.editing = true
	f.inputs[fieldID].SetValue(t.ID)
	f.inputs[fieldName].SetValue(t.Name)
	f.inputs[fieldDue].SetValue(t.DueString())
	f.inputs[fieldPriority].SetValue(t.Priority.String())
	f.setFocus(fieldName)
	return f
}

func (f *taskForm) firstField() int {
	if f.editing {
		return fieldName
	}
	return fieldID
}

func (f *taskForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[i].Focus()
}

// next moves focus forward and reports whether it ran past the last field.
func (f *taskForm) next() (tea.Cmd, bool) {
	if f.focus == fieldPriority {
		return nil, true
	}
	return f.setFocus(f.focus + 1), false
}

func (f *taskForm) prev() tea.Cmd {
	if f.focus == f.firstField() {
		return nil
	}
	return f.setFocus(f.focus - 1)
}

func (f *taskForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *taskForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *taskForm) view(r ui.Renderer) string {
	var sb strings.Builder
	if f.editing {
		sb.WriteString(r.Header("Edit task "+f.value(fieldID)) + "\n\n")
	} else {
		sb.WriteString(r.Header("Add task") + "\n\n")
	}
	for i := f.firstField(); i < fieldCount; i++ {
		sb.WriteString(f.inputs[i].View() + "\n")
	}
	return sb.String()
}
