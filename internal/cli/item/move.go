package item

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	itemservice "github.com/thenoetrevino/lanes/internal/services/item"
)

// MoveCmd returns the move command
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Move an item to another column or position",
		Long: `Move an item. Columns and positions count from 1.

A column one past the last creates a new column. Without --position the
item goes to the end of the destination column.

Examples:
  # Second column, at the top
  lanes move 0192f3c4-... --column 2 --position 1

  # Start a new column on a two-column board
  lanes move 0192f3c4-... --column 3`,
		Args: cli.UsageArgs(cobra.ExactArgs(1)),
		RunE: runMove,
	}

	cmd.Flags().Int("column", 0, "Destination column (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Int("position", 0, "Destination position, from 1 (default: end of column)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)
	id := args[0]

	column, _ := cmd.Flags().GetInt("column")
	position, _ := cmd.Flags().GetInt("position")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	items := cliInstance.App.ItemService

	_, from, ok := items.FindItem(id)
	if !ok {
		return formatter.FailWithSuggestion(cli.ExitNotFound, "ITEM_NOT_FOUND",
			fmt.Errorf("%w: %s", itemservice.ErrItemNotFound, id),
			"List item ids with: lanes list")
	}

	to := models.Location{Column: column - 1, Index: position - 1}
	if !cmd.Flags().Changed("position") {
		to.Index = endIndex(items.Board(), from, to.Column)
	}

	changed, err := items.MoveItem(ctx, id, to)
	if err != nil {
		return formatter.FailWith(err)
	}

	it, loc, _ := items.FindItem(id)
	return formatter.Success(newItemResult("moved", it, loc, changed))
}

// endIndex is the append slot of column dst for an item currently at from.
// Within its own column the last slot is the item's own row at the end.
func endIndex(b models.Board, from models.Location, dst int) int {
	if dst < 0 || dst >= len(b.Columns) {
		return 0
	}
	n := len(b.Columns[dst].Items)
	if dst == from.Column {
		return n - 1
	}
	return n
}
