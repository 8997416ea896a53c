package action

import (
	"errors"
	"fmt"
)

var (
	// ErrInput is the parent of every command-line usage error.
	ErrInput = errors.New("invalid input")

	// ErrMissingAction is returned when no action token was supplied.
	ErrMissingAction = fmt.Errorf("%w: an action needs to be provided", ErrInput)

	// ErrUnknownAction is returned when the action token matches no catalog entry.
	ErrUnknownAction = fmt.Errorf("%w: unknown action", ErrInput)

	// ErrMissingArguments is returned when an action that requires arguments got none.
	ErrMissingArguments = fmt.Errorf("%w: action requires arguments", ErrInput)

	// ErrInvalidIndex is returned when the index argument is missing, non-numeric, or not positive.
	ErrInvalidIndex = errors.New("index must be a positive integer")

	// ErrIndexOutOfRange is returned when an index addresses no stored todo.
	ErrIndexOutOfRange = errors.New("index out of range")
)
