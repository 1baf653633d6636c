package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// MaxCrashReports is the number of reports kept in the crash directory.
const MaxCrashReports = 10

const (
	reportPrefix = "crash_"
	reportSuffix = ".log"
)

// crashState holds what we know about the session at the time of a panic.
type crashState struct {
	mu        sync.RWMutex
	fs        afero.Fs
	dir       string
	version   string
	command   string
	lastInput string
}

var crash = &crashState{fs: afero.NewOsFs()}

// SetCrashDir sets the directory crash reports are written to.
func SetCrashDir(dir string) {
	crash.mu.Lock()
	defer crash.mu.Unlock()
	crash.dir = dir
}

// SetVersion records the application version for crash reports.
func SetVersion(version string) {
	crash.mu.Lock()
	defer crash.mu.Unlock()
	crash.version = version
}

// SetCommand records the command currently running.
func SetCommand(cmd string) {
	crash.mu.Lock()
	defer crash.mu.Unlock()
	crash.command = cmd
}

// SetLastInput records the last line the user typed.
func SetLastInput(input string) {
	crash.mu.Lock()
	defer crash.mu.Unlock()
	crash.lastInput = truncate(strings.TrimSpace(input), 500)
}

func truncate(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashReport is the content of one crash report file.
type CrashReport struct {
	Timestamp  time.Time `json:"timestamp"`
	SessionID  string    `json:"session_id"`
	Version    string    `json:"version"`
	Command    string    `json:"command"`
	PanicValue string    `json:"panic_value"`
	StackTrace string    `json:"stack_trace"`
	LastInput  string    `json:"last_input,omitempty"`
	Platform   string    `json:"platform"`
}

// HandlePanic recovers a panic, writes a crash report and exits with status 1.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}

	report := newCrashReport(r)
	path, err := writeCrashReport(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash report: %v\n", err)
		fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, report.StackTrace)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\ntodolist stopped unexpectedly. Your tasks from this session were not saved.\n")
	fmt.Fprintf(os.Stderr, "A crash report has been saved to:\n  %s\n\n", path)
	os.Exit(1)
}

func newCrashReport(panicValue any) CrashReport {
	crash.mu.RLock()
	defer crash.mu.RUnlock()

	return CrashReport{
		Timestamp:  time.Now(),
		SessionID:  SessionID(),
		Version:    crash.version,
		Command:    crash.command,
		PanicValue: fmt.Sprintf("%v", panicValue),
		StackTrace: string(debug.Stack()),
		LastInput:  crash.lastInput,
		Platform:   fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}
}

func crashDir() string {
	crash.mu.RLock()
	defer crash.mu.RUnlock()
	if crash.dir == "" {
		return filepath.Join(os.TempDir(), "todolist", "crash_logs")
	}
	return crash.dir
}

func crashReportPath(t time.Time) string {
	return filepath.Join(crashDir(), reportPrefix+t.Format("20060102_150405")+reportSuffix)
}

// writeCrashReport stores the report and returns its path.
func writeCrashReport(report CrashReport) (string, error) {
	dir := crashDir()
	if err := crash.fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create crash dir: %w", err)
	}

	path := crashReportPath(report.Timestamp)
	if err := afero.WriteFile(crash.fs, path, []byte(formatCrashReport(report)), 0644); err != nil {
		return "", fmt.Errorf("write crash report: %w", err)
	}

	if err := pruneCrashReports(); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to prune old crash reports: %v\n", err)
	}
	return path, nil
}

func formatCrashReport(r CrashReport) string {
	rule := strings.Repeat("-", 72)
	var sb strings.Builder

	fmt.Fprintf(&sb, "todolist crash report\n%s\n", rule)
	fmt.Fprintf(&sb, "Time:     %s\n", r.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Session:  %s\n", r.SessionID)
	fmt.Fprintf(&sb, "Version:  %s\n", r.Version)
	fmt.Fprintf(&sb, "Command:  %s\n", r.Command)
	fmt.Fprintf(&sb, "Platform: %s\n", r.Platform)
	if r.LastInput != "" {
		fmt.Fprintf(&sb, "Input:    %s\n", r.LastInput)
	}
	fmt.Fprintf(&sb, "%s\npanic: %s\n\n%s", rule, r.PanicValue, r.StackTrace)
	return sb.String()
}

// ListCrashReports returns the report files in the crash directory, oldest first.
func ListCrashReports() ([]string, error) {
	dir := crashDir()
	entries, err := afero.ReadDir(crash.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var reports []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), reportPrefix) && strings.HasSuffix(e.Name(), reportSuffix) {
			reports = append(reports, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(reports)
	return reports, nil
}

// pruneCrashReports removes the oldest reports beyond MaxCrashReports.
func pruneCrashReports() error {
	reports, err := ListCrashReports()
	if err != nil {
		return err
	}
	for len(reports) > MaxCrashReports {
		if err := crash.fs.Remove(reports[0]); err != nil {
			return fmt.Errorf("remove %s: %w", filepath.Base(reports[0]), err)
		}
		reports = reports[1:]
	}
	return nil
}
