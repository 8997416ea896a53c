package ui

import (
	"fmt"
	"strconv"
	"strings"

	internalstrings "github.com/amonks/terminal-todo/internal/strings"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// Format selects how a todo list is rendered.
type Format string

const (
	// FormatDetail renders each todo as labelled lines under its ordinal.
	FormatDetail Format = "detail"

	// FormatTable renders one row per todo.
	FormatTable Format = "table"
)

const minWrapWidth = 20

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(value string) (Format, error) {
	switch format := Format(internalstrings.NormalizeLowerTrimSpace(value)); format {
	case FormatDetail, FormatTable:
		return format, nil
	case "":
		return FormatDetail, nil
	default:
		return "", fmt.Errorf("invalid list format %q (expected %s or %s)", value, FormatDetail, FormatTable)
	}
}

// Entry is one todo as shown in a list.
type Entry struct {
	Ordinal     int
	Title       string
	Description string
	Status      string
}

// RenderList returns the output lines for entries in the given format.
// In the detail format a positive width wraps long descriptions; zero
// prints every field exactly as stored.
func RenderList(entries []Entry, format Format, width int) []string {
	if format == FormatTable {
		return renderTable(entries)
	}

	var lines []string
	for _, entry := range entries {
		lines = append(lines, renderDetail(entry, width)...)
	}
	return lines
}

// SingleLine removes line breaks so a field prints on one line.
func SingleLine(value string) string {
	return internalstrings.StripNewlines(value)
}

func renderDetail(entry Entry, width int) []string {
	prefix := strconv.Itoa(entry.Ordinal) + ". "
	margin := strings.Repeat(" ", len(prefix))

	description := SingleLine(entry.Description)
	if width > 0 {
		description = wrapField(description, width-len(margin)-len(descriptionLabel), len(margin)+len(descriptionLabel))
	}

	body := styleOrdinal(prefix) + titleLabel + SingleLine(entry.Title) + "\n" +
		margin + descriptionLabel + description + "\n" +
		margin + doneLabel + entry.Status
	return strings.Split(body, "\n")
}

const (
	titleLabel       = "Title: "
	descriptionLabel = "Description: "
	doneLabel        = "Done: "
)

// wrapField wraps value at width cells and indents continuation lines so
// they line up under the first. Spaces inside a line are kept.
func wrapField(value string, width, hanging int) string {
	if lipgloss.Width(value) <= width {
		return value
	}
	wrapped := wordwrap.String(value, max(width, minWrapWidth))
	first, rest, found := strings.Cut(wrapped, "\n")
	if !found {
		return first
	}
	return first + "\n" + indent.String(rest, uint(hanging))
}

func renderTable(entries []Entry) []string {
	builder := NewTableBuilder([]string{"#", "DONE", "TITLE", "DESCRIPTION"}, len(entries))
	for _, entry := range entries {
		builder.AddRow([]string{
			styleOrdinal(strconv.Itoa(entry.Ordinal)),
			entry.Status,
			TruncateTableCell(entry.Title),
			TruncateTableCell(entry.Description),
		})
	}
	return strings.Split(strings.TrimSuffix(builder.String(), "\n"), "\n")
}
