package todo

import (
	"fmt"
	"strings"

	internalstrings "github.com/amonks/terminal-todo/internal/strings"
)

const (
	// Separator joins the fields of a record. It is not escaped inside fields,
	// so a title or description containing it will not decode.
	Separator = ","

	recordFields = 3
)

// Encode serializes a todo as a single newline-terminated record.
func Encode(t Todo) string {
	var builder strings.Builder
	builder.WriteString(sanitizeField(t.Title))
	builder.WriteString(Separator)
	builder.WriteString(sanitizeField(t.Description))
	builder.WriteString(Separator)
	builder.WriteString(string(t.Status))
	builder.WriteByte('\n')
	return builder.String()
}

// Decode parses a record produced by Encode. The line must not include its
// terminator.
func Decode(line string) (Todo, error) {
	fields := strings.Split(line, Separator)
	if len(fields) != recordFields {
		return Todo{}, fmt.Errorf("%w: expected %d fields, got %d", ErrCorruptRecord, recordFields, len(fields))
	}

	status := Status(fields[2])
	if !status.IsValid() {
		return Todo{}, fmt.Errorf("%w: invalid status %q", ErrCorruptRecord, fields[2])
	}

	return Todo{
		Title:       fields[0],
		Description: fields[1],
		Status:      status,
	}, nil
}

func sanitizeField(value string) string {
	return internalstrings.StripNewlines(value)
}
