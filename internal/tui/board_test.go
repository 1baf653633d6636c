package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/todolist/internal/shell"
	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *store.MemoryTaskStore {
	t.Helper()
	s := store.NewMemoryTaskStore()
	require.NoError(t, s.Add("1", "Buy milk", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), models.Low))
	require.NoError(t, s.Add("2", "Pay bills", time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), models.High))
	return s
}

func press(t *testing.T, m BoardModel, keys ...string) BoardModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(BoardModel)
		require.True(t, ok)
	}
	return m
}

func TestBoard_ListsAllTasks(t *testing.T) {
	m := NewBoardModel(seededStore(t), Options{}, nil)
	view := m.View()

	assert.Contains(t, view, "▶ 1. [in progress] Buy milk | Due: 01.03.2024 | Priority: low")
	assert.Contains(t, view, "  2. [in progress] Pay bills | Due: 15.02.2024 | Priority: high")
	assert.Contains(t, view, "Total: 2 tasks")
	assert.Contains(t, view, "[All]")
}

func TestBoard_SwitchViews(t *testing.T) {
	m := NewBoardModel(seededStore(t), Options{}, nil)

	m = press(t, m, "tab")
	assert.Contains(t, m.View(), "[By date]")
	assert.Equal(t, "2", m.tasks[0].ID)

	m = press(t, m, "tab")
	assert.Contains(t, m.View(), "[By priority]")
	assert.Equal(t, "2", m.tasks[0].ID)

	m = press(t, m, "tab")
	assert.Equal(t, "1", m.tasks[0].ID)
}

func TestBoard_CompleteAndDeleteSelected(t *testing.T) {
	s := seededStore(t)
	m := NewBoardModel(s, Options{}, nil)

	m = press(t, m, "j", "c")
	assert.Contains(t, m.View(), shell.MsgCompleted)
	task, err := s.Get("2")
	require.NoError(t, err)
	assert.True(t, task.IsCompleted)

	m = press(t, m, "d")
	assert.Contains(t, m.View(), shell.MsgDeleted)
	assert.False(t, s.Exists("2"))
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, "d", "d")
	assert.Equal(t, 0, s.Len())
	assert.Contains(t, m.View(), "No tasks found.")
}

func TestBoard_CursorStaysInBounds(t *testing.T) {
	m := NewBoardModel(seededStore(t), Options{}, nil)
	m = press(t, m, "k", "k")
	assert.Equal(t, 0, m.cursor)
	m = press(t, m, "j", "j", "j")
	assert.Equal(t, 1, m.cursor)
}

func TestBoard_AddForm(t *testing.T) {
	s := store.NewMemoryTaskStore()
	m := NewBoardModel(s, Options{}, nil)

	m = press(t, m, "a", "9", "enter", "Walk dog", "enter", "05.05.2025", "enter", "HIGH", "enter")

	assert.Nil(t, m.form)
	assert.Contains(t, m.View(), shell.MsgAdded)
	task, err := s.Get("9")
	require.NoError(t, err)
	assert.Equal(t, "9. [in progress] Walk dog | Due: 05.05.2025 | Priority: high", task.Line())
}

func TestBoard_AddFormDuplicateID(t *testing.T) {
	s := seededStore(t)
	m := NewBoardModel(s, Options{}, nil)

	m = press(t, m, "a", "1", "enter", "Again", "enter", "01.01.2025", "enter", "low", "enter")

	assert.Contains(t, m.View(), "Task with this ID '1' already exists")
	task, _ := s.Get("1")
	assert.Equal(t, "Buy milk", task.Name)
}

func TestBoard_AddFormInvalidDateKeepsForm(t *testing.T) {
	s := store.NewMemoryTaskStore()
	m := NewBoardModel(s, Options{}, nil)

	m = press(t, m, "a", "9", "enter", "Walk dog", "enter", "2025-05-05", "enter", "low", "enter")

	require.NotNil(t, m.form)
	assert.Equal(t, fieldDue, m.form.focus)
	assert.Contains(t, m.View(), shell.MsgInvalidDate)
	assert.Equal(t, 0, s.Len())
}

func TestBoard_AddFormAutoID(t *testing.T) {
	s := store.NewMemoryTaskStore()
	m := NewBoardModel(s, Options{AutoID: true}, nil)

	press(t, m, "a", "enter", "Walk dog", "enter", "05.05.2025", "enter", "low", "enter")

	all := s.ListAll()
	require.Len(t, all, 1)
	assert.Len(t, all[0].ID, 6)
}

func TestBoard_EditForm(t *testing.T) {
	s := seededStore(t)
	m := NewBoardModel(s, Options{}, nil)

	m = press(t, m, "e")
	require.NotNil(t, m.form)
	assert.Contains(t, m.View(), "Edit task 1")
	assert.Contains(t, m.View(), "Buy milk")

	m = press(t, m, " and bread", "enter", "enter", "enter")
	assert.Contains(t, m.View(), shell.MsgUpdated)

	task, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk and bread", task.Name)
	assert.Equal(t, "01.03.2024", task.DueString())
	assert.Equal(t, models.Low, task.Priority)
}

func TestBoard_FormEscCancels(t *testing.T) {
	s := store.NewMemoryTaskStore()
	m := NewBoardModel(s, Options{}, nil)

	m = press(t, m, "a", "q", "esc")
	assert.Nil(t, m.form)
	assert.Contains(t, m.View(), shell.MsgCancelled)
	assert.Equal(t, 0, s.Len())
}

func TestBoard_Quit(t *testing.T) {
	m := NewBoardModel(store.NewMemoryTaskStore(), Options{}, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestBoard_HelpToggle(t *testing.T) {
	m := NewBoardModel(store.NewMemoryTaskStore(), Options{}, nil)
	short := m.View()
	m = press(t, m, "?")
	full := m.View()

	assert.NotContains(t, short, "delete")
	assert.Contains(t, full, "delete")
	assert.True(t, strings.Count(full, "\n") > strings.Count(short, "\n"))
}
