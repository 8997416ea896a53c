package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	ordinalStyle = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

// colorEnabled is swapped out in tests.
var colorEnabled = ansiEnabled

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func styleOrdinal(value string) string {
	if !colorEnabled() {
		return value
	}
	return ordinalStyle.Render(value)
}

func styleHeader(value string) string {
	if !colorEnabled() {
		return value
	}
	return headerStyle.Render(value)
}
