package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/board"
	itemservice "github.com/thenoetrevino/lanes/internal/services/item"
)

// ClassifyError maps a service or storage error to an exit code and the
// machine-readable code used in JSON output
func ClassifyError(err error) (int, string) {
	switch {
	case errors.Is(err, itemservice.ErrItemNotFound):
		return ExitNotFound, "ITEM_NOT_FOUND"
	case errors.Is(err, itemservice.ErrInvalidItemID),
		errors.Is(err, board.ErrColumnOutOfRange),
		errors.Is(err, board.ErrIndexOutOfRange):
		return ExitValidation, "VALIDATION_ERROR"
	case errors.Is(err, board.ErrDuplicateID),
		errors.Is(err, board.ErrEmptyColumn),
		errors.Is(err, board.ErrEmptyItemID),
		errors.Is(err, board.ErrEmptyColumnID):
		return ExitDataErr, "DATA_ERROR"
	default:
		return ExitError, "INTERNAL_ERROR"
	}
}

// FailWith prints err with the code ClassifyError picks for it
func (f *OutputFormatter) FailWith(err error) error {
	exitCode, code := ClassifyError(err)
	return f.Fail(exitCode, code, err)
}

// UsageArgs wraps a positional argument validator so its errors exit with
// ExitUsage
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return UsageError(err)
		}
		return nil
	}
}
