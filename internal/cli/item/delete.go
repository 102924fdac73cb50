package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	itemservice "github.com/thenoetrevino/lanes/internal/services/item"
)

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an item",
		Long:  "Delete an item by id. A column left without items is removed.",
		Args:  cli.UsageArgs(cobra.ExactArgs(1)),
		RunE:  runDelete,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)
	id := args[0]

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}

	deleted, err := cliInstance.App.ItemService.DeleteItem(ctx, id)
	if err != nil {
		return formatter.FailWith(err)
	}
	if !deleted {
		return formatter.FailWithSuggestion(cli.ExitNotFound, "ITEM_NOT_FOUND",
			fmt.Errorf("%w: %s", itemservice.ErrItemNotFound, id),
			"List item ids with: lanes list")
	}

	return formatter.Success(deleteResult{ID: id, Deleted: true})
}
