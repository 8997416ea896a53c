package action

import (
	"fmt"

	"github.com/amonks/terminal-todo/internal/ui"
	"github.com/amonks/terminal-todo/todo"
)

// Store is the persistence the executor needs.
type Store interface {
	ReadAll() ([]todo.Todo, error)
	WriteAll(todos []todo.Todo) error
	Append(t todo.Todo) error
}

// Prompter asks the user for one line of free text.
//
// Prompt returns the raw line including its terminator, or whatever was read
// before end of input. Implementations treat any other read failure as fatal.
type Prompter interface {
	Prompt(label string) string
}

// ExecutorOptions configures list rendering.
type ExecutorOptions struct {
	// ListFormat selects how list renders todos. Defaults to ui.FormatDetail.
	ListFormat ui.Format

	// Width wraps long descriptions in the detail format. Zero prints them unwrapped.
	Width int
}

// Executor runs validated actions against a store.
type Executor struct {
	store    Store
	prompter Prompter
	logger   Logger
	opts     ExecutorOptions
}

// NewExecutor returns an executor using the given collaborators.
func NewExecutor(store Store, prompter Prompter, logger Logger, opts ExecutorOptions) *Executor {
	if opts.ListFormat == "" {
		opts.ListFormat = ui.FormatDetail
	}
	return &Executor{
		store:    store,
		prompter: prompter,
		logger:   logger,
		opts:     opts,
	}
}

// Execute runs the handler for the action's kind.
func (e *Executor) Execute(action Validated) error {
	switch action.Spec.Kind {
	case KindCreate:
		return e.create()
	case KindList:
		return e.list()
	case KindEdit:
		return e.edit(action.Arguments)
	case KindDone:
		return e.mark(action.Arguments, todo.StatusDone)
	case KindUndone:
		return e.mark(action.Arguments, todo.StatusNotDone)
	case KindDelete:
		return e.delete(action.Arguments)
	default:
		return fmt.Errorf("%w: unsupported action kind %d", ErrInput, action.Spec.Kind)
	}
}

func (e *Executor) create() error {
	title := e.prompter.Prompt("Title")
	description := e.prompter.Prompt("Description")

	created := todo.New(title, description)
	if err := e.store.Append(created); err != nil {
		return fmt.Errorf("create todo: %w", err)
	}

	e.logger.Println(fmt.Sprintf("Created todo: %s", displayTitle(created)))
	return nil
}

func (e *Executor) list() error {
	todos, err := e.store.ReadAll()
	if err != nil {
		return fmt.Errorf("read todos: %w", err)
	}

	if len(todos) == 0 {
		e.logger.Println("No todos found.")
		return nil
	}

	entries := make([]ui.Entry, 0, len(todos))
	for i, t := range todos {
		entries = append(entries, ui.Entry{
			Ordinal:     i + 1,
			Title:       t.Title,
			Description: t.Description,
			Status:      string(t.Status),
		})
	}

	for _, line := range ui.RenderList(entries, e.opts.ListFormat, e.opts.Width) {
		e.logger.Println(line)
	}
	return nil
}

func (e *Executor) edit(arguments []string) error {
	index, err := ParseIndex(arguments)
	if err != nil {
		return err
	}

	todos, err := e.store.ReadAll()
	if err != nil {
		return fmt.Errorf("read todos: %w", err)
	}
	if err := checkRange(index, len(todos)); err != nil {
		return err
	}

	title := e.prompter.Prompt("Title")
	description := e.prompter.Prompt("Description")

	if hasReplacement(title) {
		todos[index].Title = title
	}
	if hasReplacement(description) {
		todos[index].Description = description
	}

	if err := e.store.WriteAll(todos); err != nil {
		return fmt.Errorf("write todos: %w", err)
	}

	e.logger.Println(fmt.Sprintf("Updated todo %d: %s", index+1, displayTitle(todos[index])))
	return nil
}

func (e *Executor) mark(arguments []string, status todo.Status) error {
	index, err := ParseIndex(arguments)
	if err != nil {
		return err
	}

	todos, err := e.store.ReadAll()
	if err != nil {
		return fmt.Errorf("read todos: %w", err)
	}
	if err := checkRange(index, len(todos)); err != nil {
		return err
	}

	todos[index].Status = status

	if err := e.store.WriteAll(todos); err != nil {
		return fmt.Errorf("write todos: %w", err)
	}

	e.logger.Println(fmt.Sprintf("Marked todo %d %s: %s", index+1, status, displayTitle(todos[index])))
	return nil
}

func (e *Executor) delete(arguments []string) error {
	index, err := ParseIndex(arguments)
	if err != nil {
		return err
	}

	todos, err := e.store.ReadAll()
	if err != nil {
		return fmt.Errorf("read todos: %w", err)
	}

	// Position 0 is already rejected by ParseIndex; delete checks it again.
	if position := index + 1; position <= 0 {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, position)
	}
	if err := checkRange(index, len(todos)); err != nil {
		return err
	}

	removed := todos[index]
	todos = append(todos[:index], todos[index+1:]...)

	if err := e.store.WriteAll(todos); err != nil {
		return fmt.Errorf("write todos: %w", err)
	}

	e.logger.Println(fmt.Sprintf("Deleted todo %d: %s", index+1, displayTitle(removed)))
	return nil
}

// hasReplacement reports whether a prompt answer is more than a bare line
// terminator.
func hasReplacement(input string) bool {
	return len(input) > 1
}

func displayTitle(t todo.Todo) string {
	return ui.SingleLine(t.Title)
}
