// Package export writes a snapshot of the session's tasks when the shell exits.
// Snapshots are never read back.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/josephgoksu/todolist/models"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// ErrUnsupportedFormat is returned for formats other than json, yaml and toml.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Task is the exported form of a task. Dates use ISO 8601.
type Task struct {
	ID        string `json:"id" yaml:"id" toml:"id"`
	Name      string `json:"name" yaml:"name" toml:"name"`
	Due       string `json:"due" yaml:"due" toml:"due"`
	Priority  string `json:"priority" yaml:"priority" toml:"priority"`
	Rank      int    `json:"rank" yaml:"rank" toml:"rank"`
	Completed bool   `json:"completed" yaml:"completed" toml:"completed"`
}

// Snapshot is the document written to disk.
type Snapshot struct {
	SessionID   string    `json:"sessionId" yaml:"sessionId" toml:"session_id"`
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt" toml:"generated_at"`
	Count       int       `json:"count" yaml:"count" toml:"count"`
	Tasks       []Task    `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// NewSnapshot converts tasks, keeping their order.
func NewSnapshot(sessionID string, generatedAt time.Time, tasks []models.Task) Snapshot {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, Task{
			ID:        t.ID,
			Name:      t.Name,
			Due:       t.DueDate.Format(time.DateOnly),
			Priority:  t.Priority.String(),
			Rank:      t.Priority.Rank(),
			Completed: t.IsCompleted,
		})
	}
	return Snapshot{
		SessionID:   sessionID,
		GeneratedAt: generatedAt.UTC().Truncate(time.Second),
		Count:       len(out),
		Tasks:       out,
	}
}

// Encode serializes snap in the given format.
func Encode(snap Snapshot, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(snap); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return buf.Bytes(), nil
}

// FormatFromPath guesses the format from a file extension, returning fallback when unknown.
func FormatFromPath(path, fallback string) string {
	switch filepath.Ext(path) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return fallback
	}
}

// Writer writes snapshots to a filesystem.
type Writer struct {
	fs  afero.Fs
	now func() time.Time
}

// NewWriter creates a Writer over fs.
// Use afero.NewOsFs() for real files, or afero.NewMemMapFs() for testing.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs, now: time.Now}
}

// Write encodes tasks and writes them to path, replacing any existing file.
func (w *Writer) Write(path, format, sessionID string, tasks []models.Task) error {
	data, err := Encode(NewSnapshot(sessionID, w.now(), tasks), format)
	if err != nil {
		return err
	}
	if err := w.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := afero.WriteFile(w.fs, path, data, 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
