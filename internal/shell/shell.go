// Package shell implements the numbered-menu front end over a TaskStore.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/internal/util"
	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/store"
)

const menu = `(=== TO-DO LIST ===)
1. Add Task
2. Edit Task
3. Delete Task
4. Mark Complete
5. View All Tasks
6. View by Date
7. View by Priority
8. Exit`

// Options controls the parts of the shell that only affect presentation.
type Options struct {
	ClearScreen   bool
	Pause         bool
	ConfirmDelete bool
	AutoID        bool
	Renderer      ui.Renderer
}

// ExitHook runs once when the user leaves the menu, with the tasks of the session.
type ExitHook func(tasks []models.Task) error

// Shell reads menu choices and field values line by line, turns them into
// commands and prints the outcome.
type Shell struct {
	store store.TaskStore
	in    *bufio.Reader
	out   io.Writer
	log   *log.Logger

	// lines is fed by a single reader goroutine so prompts can also wait on ctx.
	lines    chan string
	readErr  error
	readOnce sync.Once
	ctx      context.Context

	mu   sync.RWMutex
	opts Options

	onExit ExitHook
}

// New creates a shell over s. A nil logger discards diagnostics.
func New(s store.TaskStore, in io.Reader, out io.Writer, opts Options, l *log.Logger) *Shell {
	if l == nil {
		l = logger.Discard()
	}
	return &Shell{
		store: s,
		in:    bufio.NewReader(in),
		out:   out,
		log:   l,
		opts:  opts,
		lines: make(chan string),
		ctx:   context.Background(),
	}
}

// SetOptions swaps presentation options. Safe to call while Run is active.
func (sh *Shell) SetOptions(opts Options) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.opts = opts
}

// Options returns the current presentation options.
func (sh *Shell) Options() Options {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return sh.opts
}

// OnExit registers a hook run when the menu loop ends normally.
func (sh *Shell) OnExit(hook ExitHook) {
	sh.onExit = hook
}

// Run shows the menu until the user picks Exit, input ends, or ctx is cancelled.
// Cancellation ends the session like Exit, including while waiting for input.
func (sh *Shell) Run(ctx context.Context) error {
	sh.ctx = ctx
	for {
		if ctx.Err() != nil {
			sh.log.Debug("session cancelled", "err", ctx.Err())
			return sh.exit()
		}

		sh.clear()
		sh.println(menu)
		choice, err := sh.prompt("Choose: ")
		if sessionOver(err) {
			return sh.exit()
		}
		if err != nil {
			return err
		}

		if choice == "8" {
			return sh.exit()
		}
		if err := sh.dispatch(choice); err != nil {
			if sessionOver(err) {
				return sh.exit()
			}
			return err
		}
	}
}

// sessionOver reports whether err means the user is gone: input ended or ctx was cancelled.
func sessionOver(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (sh *Shell) dispatch(choice string) error {
	switch choice {
	case "1":
		return sh.addTask()
	case "2":
		return sh.editTask()
	case "3":
		return sh.deleteTask()
	case "4":
		return sh.completeTask()
	case "5":
		return sh.view(ViewAll)
	case "6":
		return sh.view(ViewByDate)
	case "7":
		return sh.view(ViewByPriority)
	default:
		sh.log.Debug("invalid menu choice", "input", choice)
		sh.println(sh.Options().Renderer.Error(MsgInvalidChoice))
		return sh.pause()
	}
}

func (sh *Shell) addTask() error {
	sh.clear()
	id, err := sh.prompt("ID: ")
	if err != nil {
		return err
	}
	if id == "" && sh.Options().AutoID {
		id, err = util.NewTaskID(sh.store.Exists)
		if err != nil {
			return err
		}
		sh.println(sh.Options().Renderer.Subtle("Generated ID: " + id))
	}

	name, err := sh.prompt("Name: ")
	if err != nil {
		return err
	}

	due, ok, err := sh.promptDate("Due date (dd.mm.yyyy): ")
	if err != nil || !ok {
		return err
	}

	priority, err := sh.promptPriority("Priority (high/medium/low): ")
	if err != nil {
		return err
	}

	sh.apply(AddCommand{ID: id, Name: name, DueDate: due, Priority: priority})
	return sh.pause()
}

func (sh *Shell) editTask() error {
	sh.clear()
	id, err := sh.prompt("Task ID: ")
	if err != nil {
		return err
	}

	current, err := sh.store.Get(id)
	if err != nil {
		sh.println(sh.Options().Renderer.Error(MsgNotFound))
		return sh.pause()
	}
	sh.println(sh.Options().Renderer.Subtle("Current: " + current.Line()))

	name, err := sh.prompt("New name: ")
	if err != nil {
		return err
	}

	due, ok, err := sh.promptDate("New due date (dd.mm.yyyy): ")
	if err != nil || !ok {
		return err
	}

	priority, err := sh.promptPriority("New priority (high/medium/low): ")
	if err != nil {
		return err
	}

	sh.apply(EditCommand{ID: id, Name: name, DueDate: due, Priority: priority})
	return sh.pause()
}

func (sh *Shell) deleteTask() error {
	sh.clear()
	id, err := sh.prompt("Task ID: ")
	if err != nil {
		return err
	}

	if sh.Options().ConfirmDelete && sh.store.Exists(id) {
		answer, err := sh.prompt(fmt.Sprintf("Delete task '%s'? [y/N]: ", id))
		if err != nil {
			return err
		}
		if a := strings.ToLower(answer); a != "y" && a != "yes" {
			sh.println(MsgCancelled)
			return sh.pause()
		}
	}

	sh.apply(DeleteCommand{ID: id})
	return sh.pause()
}

func (sh *Shell) completeTask() error {
	sh.clear()
	id, err := sh.prompt("Task ID: ")
	if err != nil {
		return err
	}
	sh.apply(CompleteCommand{ID: id})
	return sh.pause()
}

func (sh *Shell) view(order ViewOrder) error {
	sh.clear()
	sh.apply(ViewCommand{Order: order})
	return sh.pause()
}

// apply executes cmd against the store and prints the outcome.
func (sh *Shell) apply(cmd Command) {
	r := sh.Options().Renderer
	res, err := cmd.Execute(sh.store)
	if err != nil {
		sh.log.Debug("command failed", "op", cmd.Op(), "id", cmd.TaskID(), "err", err)
		sh.println(r.Error(FailureMessage(cmd, err)))
		return
	}

	sh.log.Debug("command applied", "op", cmd.Op(), "id", cmd.TaskID(), "tasks", sh.store.Len())
	if res.IsView() {
		fmt.Fprint(sh.out, r.TaskList(res.Title, res.Tasks, res.ShowTotal))
		return
	}
	sh.println(r.Success(res.Message))
}

func (sh *Shell) exit() error {
	if sh.onExit == nil {
		return nil
	}
	if err := sh.onExit(sh.store.ListAll()); err != nil {
		sh.log.Error("exit hook failed", "err", err)
		sh.println(sh.Options().Renderer.Warning("Could not export tasks: " + err.Error()))
		return err
	}
	return nil
}

// prompt prints label and returns the next input line without surrounding space.
// A final line without a newline is still returned; io.EOF only comes once input is exhausted.
func (sh *Shell) prompt(label string) (string, error) {
	fmt.Fprint(sh.out, label)
	sh.readOnce.Do(func() { go sh.readLines() })

	select {
	case <-sh.ctx.Done():
		sh.println("")
		return "", sh.ctx.Err()
	case line, ok := <-sh.lines:
		if !ok {
			if errors.Is(sh.readErr, io.EOF) {
				sh.println("")
			}
			return "", sh.readErr
		}
		line = strings.TrimSpace(line)
		logger.SetLastInput(line)
		return line, nil
	}
}

// readLines feeds sh.lines until input fails, then records the error and
// closes the channel.
func (sh *Shell) readLines() {
	for {
		line, err := sh.in.ReadString('\n')
		if err == nil || (errors.Is(err, io.EOF) && line != "") {
			sh.lines <- line
		}
		if err != nil {
			sh.readErr = err
			close(sh.lines)
			return
		}
	}
}

// promptDate reads a due date. ok is false when the input was not a valid
// dd.mm.yyyy date, in which case the user has already been told.
func (sh *Shell) promptDate(label string) (time.Time, bool, error) {
	raw, err := sh.prompt(label)
	if err != nil {
		return time.Time{}, false, err
	}
	due, err := models.ParseDueDate(raw)
	if err != nil {
		sh.log.Debug("rejected due date", "input", raw, "err", err)
		sh.println(sh.Options().Renderer.Error(MsgInvalidDate))
		return time.Time{}, false, sh.pause()
	}
	return due, true, nil
}

func (sh *Shell) promptPriority(label string) (models.Priority, error) {
	raw, err := sh.prompt(label)
	if err != nil {
		return models.Priority{}, err
	}
	return models.ParsePriority(models.NormalizePriority(raw)), nil
}

func (sh *Shell) pause() error {
	if !sh.Options().Pause {
		return nil
	}
	_, err := sh.prompt("\nPress Enter to continue")
	return err
}

func (sh *Shell) clear() {
	if sh.Options().ClearScreen {
		fmt.Fprint(sh.out, ui.ClearScreen)
	}
}

func (sh *Shell) println(s string) {
	fmt.Fprintln(sh.out, s)
}
