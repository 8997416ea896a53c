package action

import (
	"fmt"
	"strings"
)

// Logger receives user-facing output lines and diagnostics.
type Logger interface {
	// Println writes one line of command output.
	Println(line string)

	// Warn reports a non-fatal problem.
	Warn(msg interface{}, keyvals ...interface{})
}

// Validated is a resolved action with its arguments attached.
type Validated struct {
	Spec      Spec
	Arguments []string
}

// String describes the action for debugging output.
func (v Validated) String() string {
	return fmt.Sprintf("action %s (arguments: [%s])", v.Spec.Name, strings.Join(v.Arguments, " "))
}

// Parse resolves tokens[0] against catalog and binds the remaining tokens.
func Parse(tokens []string, catalog *Catalog, logger Logger) (Validated, error) {
	if len(tokens) == 0 {
		return Validated{}, fmt.Errorf("%w [%s]", ErrMissingAction, strings.Join(catalog.Names(), ", "))
	}

	spec, err := catalog.Resolve(tokens[0])
	if err != nil {
		return Validated{}, err
	}

	return Bind(tokens[1:], spec, logger)
}

// Bind attaches tokens to spec as arguments, verbatim.
//
// An action that requires arguments fails without them. An action that takes
// none still keeps any supplied tokens, and a single warning is logged.
func Bind(tokens []string, spec Spec, logger Logger) (Validated, error) {
	arguments := append([]string{}, tokens...)

	switch {
	case spec.RequiresArguments && len(arguments) == 0:
		return Validated{}, fmt.Errorf("%w: %s", ErrMissingArguments, spec.Name)
	case !spec.RequiresArguments && len(arguments) > 0:
		logger.Warn("action does not take arguments", "action", spec.Name, "arguments", arguments)
	}

	return Validated{Spec: spec, Arguments: arguments}, nil
}
