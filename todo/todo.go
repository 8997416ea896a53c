package todo

import "fmt"

// Todo represents a single task.
type Todo struct {
	// Title is the short summary of the todo.
	Title string

	// Description provides additional context about the todo.
	Description string

	// Status is either StatusDone or StatusNotDone.
	Status Status
}

// New returns an unfinished todo.
// Newlines are kept until the todo is encoded.
func New(title, description string) Todo {
	return Todo{
		Title:       title,
		Description: description,
		Status:      StatusNotDone,
	}
}

// String renders the todo as labelled lines.
func (t Todo) String() string {
	return fmt.Sprintf("Title: %s\nDescription: %s\nDone: %s",
		sanitizeField(t.Title), sanitizeField(t.Description), t.Status)
}
