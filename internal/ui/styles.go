package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todolist/models"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorCyan      = lipgloss.Color("87")

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Task markers
	StyleDone    = lipgloss.NewStyle().Foreground(ColorSuccess)
	StylePending = lipgloss.NewStyle().Foreground(ColorCyan)

	// Priority labels
	StylePriorityHigh   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StylePriorityMedium = lipgloss.NewStyle().Foreground(ColorWarning)
	StylePriorityLow    = lipgloss.NewStyle().Foreground(ColorSuccess)
	StylePriorityOther  = lipgloss.NewStyle().Foreground(ColorSecondary)

	// Selected row in the board
	StyleSelected = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
)

// PriorityStyle returns the style used for a priority label.
func PriorityStyle(p models.Priority) lipgloss.Style {
	switch p.Level {
	case models.PriorityHigh:
		return StylePriorityHigh
	case models.PriorityMedium:
		return StylePriorityMedium
	case models.PriorityLow:
		return StylePriorityLow
	default:
		return StylePriorityOther
	}
}
