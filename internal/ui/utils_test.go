package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}

func TestIsInteractive(t *testing.T) {
	assert.False(t, IsInteractive(strings.NewReader("8\n"), &bytes.Buffer{}))
	assert.False(t, IsInteractive(nil, nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "in.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsInteractive(f, f))
}

func TestColorEnabled(t *testing.T) {
	assert.True(t, ColorEnabled("always", nil))
	assert.False(t, ColorEnabled("never", nil))
	assert.False(t, ColorEnabled("auto", nil))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Buy milk", 20, "Buy milk"},
		{"Buy milk", 4, "Buy…"},
		{"Buy milk", 1, "…"},
		{"Buy milk", 0, "Buy milk"},
		{"Grüße", 3, "Gr…"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.max), "Truncate(%q, %d)", tt.in, tt.max)
	}
}

func TestPanel_Render(t *testing.T) {
	out := NewPanel("Config written", "/home/me/.todolist.yaml").WithBorderColor(ColorSuccess).Render()

	assert.Contains(t, out, "Config written")
	assert.Contains(t, out, "/home/me/.todolist.yaml")
	assert.Contains(t, out, "╭")
}
