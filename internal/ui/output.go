package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	matchStyle   = lipgloss.NewStyle().Foreground(ColorMatch).Bold(true)
	noMatchStyle = lipgloss.NewStyle().Foreground(ColorNoMatch).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorNoMatch)
	warningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// YesNo renders a match decision as a styled Y or N.
func YesNo(matched bool) string {
	if matched {
		return matchStyle.Render(SymbolMatch)
	}
	return noMatchStyle.Render(SymbolNoMatch)
}

// FormatResult renders one "<label> = Y|N" line, padding label to width.
func FormatResult(label string, width int, matched bool) string {
	return fmt.Sprintf("%-*s = %s", width, label, YesNo(matched))
}

// FormatError renders an error for stderr.
func FormatError(err error) string {
	return errorStyle.Render(SymbolError + " " + err.Error())
}

// FormatWarning renders a warning for stderr.
func FormatWarning(msg string) string {
	return warningStyle.Render(SymbolWarning + " " + msg)
}

// Muted returns s styled as secondary text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}
