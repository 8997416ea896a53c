// Package todo implements the flat-file todo list.
//
// Todos are stored one per line in a plain text file, in the order they were
// created. A todo has no stable ID: it is addressed by its position in the
// list, so deleting an earlier todo renumbers every later one.
//
// The public API is the minimum the action executor needs:
//   - Encode, Decode for the one-line record format
//   - Store.ReadAll, Store.WriteAll, Store.Append for persistence
package todo

// Status represents whether a todo is finished.
type Status string

const (
	// StatusDone marks a finished todo.
	StatusDone Status = "✅"

	// StatusNotDone marks an unfinished todo. New todos start here.
	StatusNotDone Status = "❌"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusDone, StatusNotDone}
}

// IsValid returns true if the status is one of the two sentinels.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}
