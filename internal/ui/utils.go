package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ClearScreen moves the cursor home and clears the terminal.
const ClearScreen = "\033[H\033[2J"

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether both in and out are terminals. Readers and
// writers that are not files, such as pipes in tests, are never interactive.
func IsInteractive(in io.Reader, out io.Writer) bool {
	inFile, _ := in.(*os.File)
	outFile, _ := out.(*os.File)
	return IsTerminal(inFile) && IsTerminal(outFile)
}

// ColorEnabled resolves a display.color mode ("auto", "always", "never") for out.
func ColorEnabled(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return IsTerminal(out) && os.Getenv("NO_COLOR") == ""
	}
}

// Panel represents a bordered box with an optional title.
type Panel struct {
	Title       string
	Content     string
	BorderColor lipgloss.Color
}

// NewPanel creates a new panel with default styling.
func NewPanel(title, content string) *Panel {
	return &Panel{
		Title:       title,
		Content:     content,
		BorderColor: ColorSecondary,
	}
}

// WithBorderColor sets the border color and returns the panel.
func (p *Panel) WithBorderColor(color lipgloss.Color) *Panel {
	p.BorderColor = color
	return p
}

// Render returns the styled panel as a string.
func (p *Panel) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.BorderColor).
		Padding(0, 1)

	content := p.Content
	if p.Title != "" {
		content = StyleHeader.Render(p.Title) + "\n" + content
	}
	return style.Render(content)
}

// Truncate shortens s to maxLen runes, ending with an ellipsis when cut.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if maxLen <= 0 || len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}
