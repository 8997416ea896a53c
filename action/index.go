package action

import (
	"fmt"
	"strconv"
)

// ParseIndex converts the first argument from a 1-based position to a
// 0-based index. Zero, negative, and non-numeric values are rejected before
// the conversion.
func ParseIndex(arguments []string) (int, error) {
	if len(arguments) == 0 {
		return 0, fmt.Errorf("%w: missing index", ErrInvalidIndex)
	}

	position, err := strconv.Atoi(arguments[0])
	if err != nil || position <= 0 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidIndex, arguments[0])
	}

	return position - 1, nil
}

func checkRange(index, count int) error {
	if index >= count {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index+1, count)
	}
	return nil
}
