package item

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the board",
		Long:  "List every item, column by column. --quiet prints one id per line.",
		Args:  cli.UsageArgs(cobra.NoArgs),
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}

	return formatter.Success(newBoardResult(cliInstance.App.ItemService.Board()))
}
