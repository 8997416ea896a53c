package action

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/terminal-todo/internal/ui"
	"github.com/amonks/terminal-todo/todo"
)

// recordingLogger implements Logger for testing.
type recordingLogger struct {
	lines    []string
	warnings []string
}

func (l *recordingLogger) Println(line string) {
	l.lines = append(l.lines, line)
}

func (l *recordingLogger) Warn(msg interface{}, keyvals ...interface{}) {
	l.warnings = append(l.warnings, msg.(string))
}

// scriptedPrompter answers prompts in order.
type scriptedPrompter struct {
	answers []string
	labels  []string
}

func (p *scriptedPrompter) Prompt(label string) string {
	p.labels = append(p.labels, label)
	if len(p.answers) == 0 {
		return ""
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer
}

type testEnv struct {
	store    *todo.Store
	logger   *recordingLogger
	prompter *scriptedPrompter
	executor *Executor
}

func newTestEnv(t *testing.T, answers ...string) *testEnv {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	store := todo.Open(filepath.Join(t.TempDir(), todo.StoreFile))
	logger := &recordingLogger{}
	prompter := &scriptedPrompter{answers: answers}
	return &testEnv{
		store:    store,
		logger:   logger,
		prompter: prompter,
		executor: NewExecutor(store, prompter, logger, ExecutorOptions{ListFormat: ui.FormatDetail}),
	}
}

func (env *testEnv) seed(t *testing.T, content string) {
	t.Helper()

	if err := os.WriteFile(env.store.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
}

func (env *testEnv) todos(t *testing.T) []todo.Todo {
	t.Helper()

	todos, err := env.store.ReadAll()
	if err != nil {
		t.Fatalf("failed to read todos: %v", err)
	}
	return todos
}

func (env *testEnv) run(t *testing.T, tokens ...string) error {
	t.Helper()

	action, err := Parse(tokens, DefaultCatalog(), env.logger)
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", tokens, err)
	}
	return env.executor.Execute(action)
}
