// Package main implements the todo CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "todo <action> [argument...]",
	Short: "Terminal todo list",
	Long: `Terminal todo list.

Actions:
  create          prompt for a title and description and add a todo
  list            list todos with their positions
  edit <index>    prompt for a new title and description
  done <index>    mark a todo done
  undone <index>  mark a todo not done
  delete <index>  remove a todo

Indexes are the 1-based positions shown by list. Todos are stored in
$TODO_DB/todo-list.txt, or ~/.terminal-todo/todo-list.txt by default.`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTodo,
}

var (
	rootConfigPath string
	rootListFormat string
)

func init() {
	// Everything after the action token is an argument, even if it looks like a flag.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().SetNormalizeFunc(normalizeRootFlag)
	rootCmd.Flags().StringVar(&rootConfigPath, "config", "", "Config file (default ~/.config/terminal-todo/config.toml)")
	rootCmd.Flags().StringVar(&rootListFormat, "format", "", "List format (detail, table); overrides the config file")
}
