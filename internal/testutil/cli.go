package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
)

// ExecuteCommand runs cmd with args under ctx, returning what it wrote to
// stdout and stderr
func ExecuteCommand(t *testing.T, ctx context.Context, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}
