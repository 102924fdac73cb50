package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	itemservice "github.com/thenoetrevino/lanes/internal/services/item"
)

// EditCmd returns the edit command
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit ID TEXT",
		Short: "Replace the text of an item",
		Long: `Replace the text of an item. The text is stored exactly as given.

Examples:
  lanes edit 0192f3c4-... "buy oat milk"`,
		Args: cli.UsageArgs(cobra.ExactArgs(2)),
		RunE: runEdit,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)
	id, text := args[0], args[1]

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	items := cliInstance.App.ItemService

	if _, _, ok := items.FindItem(id); !ok {
		return formatter.FailWithSuggestion(cli.ExitNotFound, "ITEM_NOT_FOUND",
			fmt.Errorf("%w: %s", itemservice.ErrItemNotFound, id),
			"List item ids with: lanes list")
	}

	changed, err := items.EditItem(ctx, id, text)
	if err != nil {
		return formatter.FailWith(err)
	}

	it, loc, _ := items.FindItem(id)
	return formatter.Success(newItemResult("updated", it, loc, changed))
}
