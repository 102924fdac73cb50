package item

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
)

var errBlankText = errors.New("item text is blank")

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add an item to the first column",
		Long: `Add an item to the end of the first column. Arguments are joined with spaces.

Examples:
  lanes add buy milk

  # Capture the new id in a script
  ITEM_ID=$(lanes add "write report" --quiet)`,
		Args: cli.UsageArgs(cobra.MinimumNArgs(1)),
		RunE: runAdd,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	items := cliInstance.App.ItemService

	added, ok, err := items.AddItem(ctx, strings.Join(args, " "))
	if err != nil {
		return formatter.FailWith(err)
	}
	if !ok {
		return formatter.Fail(cli.ExitValidation, "EMPTY_TEXT", errBlankText)
	}

	_, loc, _ := items.FindItem(added.ID)
	return formatter.Success(newItemResult("added", added, loc, true))
}
