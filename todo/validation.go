package todo

import "errors"

var (
	// ErrStorageUnavailable is returned when the todo file cannot be opened, read, or written.
	ErrStorageUnavailable = errors.New("todo storage unavailable")

	// ErrCorruptRecord is returned when a stored line does not decode into a todo.
	ErrCorruptRecord = errors.New("corrupt todo record")
)
