package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/amonks/terminal-todo/todo"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	todoPath  string
	buildErr  error
)

// BuildTodo builds the todo binary once and returns its path.
func BuildTodo(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "todo-bin-")
		if err != nil {
			buildErr = err
			return
		}

		todoPath = filepath.Join(binDir, "todo")
		cmd := exec.Command("go", "build", "-o", todoPath, "./cmd/todo")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build todo: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return todoPath
}

// SetupScriptEnv configures common environment variables for testscript.
// $TODO runs the binary and $TODO_DB points at $WORK/db.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TODO", BuildTodo(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("TODO_DB", filepath.Join(env.WorkDir, "db"))
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdTodoCount asserts how many todos the store file holds.
func CmdTodoCount(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 2 {
		ts.Fatalf("usage: todocount FILE N")
	}

	todos, err := todo.Open(ts.MkAbs(args[0])).ReadAll()
	if err != nil {
		ts.Fatalf("read todos: %v", err)
	}

	matches := fmt.Sprint(len(todos)) == args[1]
	if matches == neg {
		ts.Fatalf("todo count is %d, expected %s%s", len(todos), negPrefix(neg), args[1])
	}
}

// CmdTodoStatus asserts the status of the todo at a 1-based position.
func CmdTodoStatus(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("todostatus does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: todostatus FILE POSITION done|undone")
	}

	todos, err := todo.Open(ts.MkAbs(args[0])).ReadAll()
	if err != nil {
		ts.Fatalf("read todos: %v", err)
	}

	var position int
	if _, err := fmt.Sscan(args[1], &position); err != nil || position < 1 || position > len(todos) {
		ts.Fatalf("invalid position %q for %d todos", args[1], len(todos))
	}

	want := todo.StatusNotDone
	if args[2] == "done" {
		want = todo.StatusDone
	}
	if got := todos[position-1].Status; got != want {
		ts.Fatalf("todo %d status is %s, expected %s", position, got, want)
	}
}

func negPrefix(neg bool) string {
	if neg {
		return "not "
	}
	return ""
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
