package todo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	internalstrings "github.com/amonks/terminal-todo/internal/strings"
	"github.com/natefinch/atomic"
)

const (
	// StoreFile is the name of the file holding the todo list.
	StoreFile = "todo-list.txt"
)

// Store reads and rewrites the todo file at a fixed path.
// It assumes a single writer: there is no locking, and concurrent
// invocations that both write will lose one side's changes.
type Store struct {
	path string
}

// Open returns a store backed by the file at path. The file is created on
// first use.
func Open(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// ReadAll returns every todo in stored order.
// Decoding stops at the first corrupt record and no todos are returned.
func (s *Store) ReadAll() ([]Todo, error) {
	f, err := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrStorageUnavailable, s.path, err)
	}
	defer f.Close()

	return readTodos(f)
}

// readTodos reads records until end of input. Records have no length limit.
func readTodos(reader io.Reader) ([]Todo, error) {
	var todos []Todo
	buffered := bufio.NewReader(reader)
	for lineNum := 1; ; lineNum++ {
		line, err := buffered.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: read: %w", ErrStorageUnavailable, err)
		}

		record := internalstrings.TrimTrailingCarriageReturn(strings.TrimSuffix(line, "\n"))
		if record != "" {
			t, decodeErr := Decode(record)
			if decodeErr != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, decodeErr)
			}
			todos = append(todos, t)
		}

		if err != nil {
			return todos, nil
		}
	}
}

// WriteAll replaces the file contents with todos, in order.
func (s *Store) WriteAll(todos []Todo) error {
	var builder strings.Builder
	for _, t := range todos {
		builder.WriteString(Encode(t))
	}

	if err := atomic.WriteFile(s.path, strings.NewReader(builder.String())); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, s.path, err)
	}
	return nil
}

// Append adds one todo to the end of the file without reading it.
func (s *Store) Append(t Todo) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrStorageUnavailable, s.path, err)
	}

	if _, err := io.WriteString(f, Encode(t)); err != nil {
		f.Close()
		return fmt.Errorf("%w: append %s: %w", ErrStorageUnavailable, s.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrStorageUnavailable, s.path, err)
	}
	return nil
}
