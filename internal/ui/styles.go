// Package ui holds the terminal styling shared by the globmatch commands.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic color definitions
var (
	ColorMatch   = lipgloss.Color("#22c55e") // Green
	ColorNoMatch = lipgloss.Color("#ef4444") // Red
	ColorWarning = lipgloss.Color("#eab308") // Yellow
	ColorMuted   = lipgloss.Color("#6b7280") // Gray
)

// Symbols printed for a match decision.
const (
	SymbolMatch   = "Y"
	SymbolNoMatch = "N"
	SymbolError   = "✗"
	SymbolWarning = "!"
)

func init() {
	initColorProfile()
}

func initColorProfile() {
	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
