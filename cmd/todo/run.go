package main

import (
	"fmt"
	"path/filepath"

	"github.com/amonks/terminal-todo/action"
	"github.com/amonks/terminal-todo/internal/config"
	"github.com/amonks/terminal-todo/internal/console"
	"github.com/amonks/terminal-todo/internal/paths"
	"github.com/amonks/terminal-todo/internal/todoenv"
	"github.com/amonks/terminal-todo/internal/ui"
	"github.com/amonks/terminal-todo/todo"
	"github.com/spf13/cobra"
)

var catalog = action.DefaultCatalog()

var (
	_ action.Logger   = (*console.Console)(nil)
	_ action.Prompter = (*console.Console)(nil)
	_ action.Store    = (*todo.Store)(nil)
)

func runTodo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(rootConfigPath)
	if err != nil {
		return err
	}

	level, err := console.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	format := cfg.List.Format
	if cmd.Flags().Changed("format") {
		format = rootListFormat
	}
	listFormat, err := ui.ParseFormat(format)
	if err != nil {
		return err
	}

	con := console.New(console.Options{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Level:  level,
	})

	validated, err := action.Parse(args, catalog, con)
	if err != nil {
		return err
	}
	con.Debug("resolved", "action", validated)

	store, err := openTodoStore(cfg)
	if err != nil {
		return err
	}
	con.Debug("opened store", "path", store.Path())

	executor := action.NewExecutor(store, con, con, action.ExecutorOptions{
		ListFormat: listFormat,
		Width:      cfg.List.Width,
	})
	return executor.Execute(validated)
}

// loadConfig loads the config file at path, or the default config path.
func loadConfig(path string) (*config.Config, error) {
	path, err := paths.ResolveWithDefault(path, paths.DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// openTodoStore opens the todo file, creating its directory if needed.
func openTodoStore(cfg *config.Config) (*todo.Store, error) {
	dir, err := resolveStoreDir(cfg)
	if err != nil {
		return nil, err
	}
	if err := paths.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("%w: %w", todo.ErrStorageUnavailable, err)
	}
	return todo.Open(filepath.Join(dir, todo.StoreFile)), nil
}

// resolveStoreDir prefers $TODO_DB, then the config file, then the platform default.
func resolveStoreDir(cfg *config.Config) (string, error) {
	dir := todoenv.StoreDir()
	if dir == "" {
		dir = cfg.Store.Dir
	}
	return paths.ResolveWithDefault(dir, paths.DefaultStoreDir)
}
