// Package tui provides a full-screen board over the same task store and
// commands the menu shell uses.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/internal/shell"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/internal/util"
	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/store"
)

var viewTabs = []struct {
	order shell.ViewOrder
	label string
}{
	{shell.ViewAll, "All"},
	{shell.ViewByDate, "By date"},
	{shell.ViewByPriority, "By priority"},
}

// Options configures the board.
type Options struct {
	Renderer ui.Renderer
	AutoID   bool
}

// BoardModel is the bubbletea model of the board.
type BoardModel struct {
	store store.TaskStore
	opts  Options
	log   *log.Logger

	keys keyMap
	help help.Model

	tab    int
	tasks  []models.Task
	cursor int
	status string

	form *taskForm
}

// NewBoardModel creates a board over s showing all tasks.
func NewBoardModel(s store.TaskStore, opts Options, l *log.Logger) BoardModel {
	if l == nil {
		l = logger.Discard()
	}
	m := BoardModel{
		store: s,
		opts:  opts,
		log:   l,
		keys:  defaultKeys,
		help:  help.New(),
	}
	m.refresh()
	return m
}

// Run shows the board until the user quits or ctx is cancelled.
func Run(ctx context.Context, s store.TaskStore, opts Options, l *log.Logger) error {
	p := tea.NewProgram(NewBoardModel(s, opts, l), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running board: %w", err)
	}
	return nil
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m BoardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.NextView):
		m.tab = (m.tab + 1) % len(viewTabs)
		m.status = ""
		m.refresh()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Add):
		f := newTaskForm()
		m.form = &f
		m.status = ""
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(); ok {
			f := newEditForm(t)
			m.form = &f
			m.status = ""
		}
	case key.Matches(msg, m.keys.Complete):
		if t, ok := m.selected(); ok {
			m.apply(shell.CompleteCommand{ID: t.ID})
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.apply(shell.DeleteCommand{ID: t.ID})
		}
	}
	return m, nil
}

func (m BoardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := *m.form
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.form = nil
		m.status = shell.MsgCancelled
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		cmd := f.prev()
		m.form = &f
		return m, cmd
	case tea.KeyTab, tea.KeyDown, tea.KeyEnter:
		cmd, done := f.next()
		m.form = &f
		if done && msg.Type == tea.KeyEnter {
			m.submit()
		}
		return m, cmd
	}
	cmd := f.update(msg)
	m.form = &f
	return m, cmd
}

// submit turns the form into a command. The form stays open on an invalid
// date so the user can correct it.
func (m *BoardModel) submit() {
	f := m.form
	due, err := models.ParseDueDate(f.value(fieldDue))
	if err != nil {
		m.log.Debug("rejected due date", "input", f.value(fieldDue), "err", err)
		m.status = shell.MsgInvalidDate
		f.setFocus(fieldDue)
		return
	}
	priority := models.ParsePriority(models.NormalizePriority(f.value(fieldPriority)))

	if f.editing {
		m.form = nil
		m.apply(shell.EditCommand{ID: f.value(fieldID), Name: f.value(fieldName), DueDate: due, Priority: priority})
		return
	}

	id := f.value(fieldID)
	if id == "" && m.opts.AutoID {
		id, err = util.NewTaskID(m.store.Exists)
		if err != nil {
			m.status = err.Error()
			return
		}
	}
	m.form = nil
	m.apply(shell.AddCommand{ID: id, Name: f.value(fieldName), DueDate: due, Priority: priority})
}

// apply runs one command, records its outcome in the status line and reloads the view.
func (m *BoardModel) apply(cmd shell.Command) {
	res, err := cmd.Execute(m.store)
	if err != nil {
		m.log.Debug("command failed", "op", cmd.Op(), "id", cmd.TaskID(), "err", err)
		m.status = shell.FailureMessage(cmd, err)
	} else {
		m.log.Debug("command applied", "op", cmd.Op(), "id", cmd.TaskID(), "tasks", m.store.Len())
		m.status = res.Message
	}
	m.refresh()
}

func (m *BoardModel) refresh() {
	res, _ := shell.ViewCommand{Order: viewTabs[m.tab].order}.Execute(m.store)
	m.tasks = res.Tasks
	if m.cursor >= len(m.tasks) {
		m.cursor = max(len(m.tasks)-1, 0)
	}
}

func (m BoardModel) selected() (models.Task, bool) {
	if len(m.tasks) == 0 {
		return models.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m BoardModel) View() string {
	r := m.opts.Renderer
	var sb strings.Builder

	if m.form != nil {
		sb.WriteString(m.form.view(r))
		if m.status != "" {
			sb.WriteString("\n" + r.Error(m.status) + "\n")
		}
		sb.WriteString("\n" + r.Subtle("enter next/save • shift+tab back • esc cancel") + "\n")
		return sb.String()
	}

	sb.WriteString(m.tabsView() + "\n\n")
	if len(m.tasks) == 0 {
		sb.WriteString(r.Subtle(ui.EmptyListMessage) + "\n")
	}
	for i, t := range m.tasks {
		line := "  " + r.TaskLine(t)
		if i == m.cursor {
			line = "▶ " + t.Line()
			if r.Color {
				line = ui.StyleSelected.Render(line)
			}
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString(r.Subtle(fmt.Sprintf("\nTotal: %d tasks", m.store.Len())) + "\n")

	if m.status != "" {
		sb.WriteString("\n" + m.status + "\n")
	}
	sb.WriteString("\n" + m.help.View(m.keys) + "\n")
	return sb.String()
}

func (m BoardModel) tabsView() string {
	r := m.opts.Renderer
	tabs := make([]string, 0, len(viewTabs))
	for i, t := range viewTabs {
		if i == m.tab {
			tabs = append(tabs, r.Header("["+t.label+"]"))
			continue
		}
		tabs = append(tabs, r.Subtle(" "+t.label+" "))
	}
	return strings.Join(tabs, " ")
}
