package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/item"
	"github.com/thenoetrevino/lanes/internal/logging"
	"github.com/thenoetrevino/lanes/internal/tui"
)

var (
	dbPath     string
	memoryMode bool

	// session and logCloser live for one Execute call
	session   *cli.CLI
	logCloser io.Closer
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lanes",
		Short: "Lanes - a terminal multi-column list manager",
		Long: `Lanes keeps items in columns. Add items, edit them, and move them
between columns with a keyboard drag. Run without arguments for the
interactive board.`,
		Args:              cli.UsageArgs(cobra.NoArgs),
		PersistentPreRunE: openSession,
		RunE:              runTUI,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite board file (default ~/.lanes/board.db)")
	cmd.PersistentFlags().BoolVar(&memoryMode, "memory", false, "Keep the board in memory for this session only")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.UsageError(err)
	})

	cmd.AddCommand(item.AddCmd())
	cmd.AddCommand(item.EditCmd())
	cmd.AddCommand(item.DeleteCmd())
	cmd.AddCommand(item.MoveCmd())
	cmd.AddCommand(item.ListCmd())

	return cmd
}

// Execute runs the root command and releases the session afterwards.
// Errors the commands did not print themselves are printed here.
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	closeSession()

	if err != nil && !cli.Reported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// openSession sets up logging and opens the board for every command that
// needs one
func openSession(cmd *cobra.Command, _ []string) error {
	if !needsSession(cmd) {
		return nil
	}

	initLogging()

	c, err := cli.NewCLI(cmd.Context(), cli.Options{DBPath: dbPath, Memory: memoryMode})
	if err != nil {
		exitCode, _ := cli.ClassifyError(err)
		return cli.WithExitCode(exitCode, err)
	}
	session = c
	cmd.SetContext(cli.WithCLI(cmd.Context(), c))
	return nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	c, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}

	model := tui.InitialModel(ctx, c.App, c.Config)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		slog.Error("Error running program", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// initLogging writes logs to ~/.lanes/logs, or nowhere if that fails
func initLogging() {
	dir, err := logging.DefaultDir()
	if err == nil {
		logCloser, err = logging.Init(dir)
	}
	if err != nil {
		logging.Discard()
	}
}

func closeSession() {
	if session != nil {
		if err := session.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
		session = nil
	}
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// needsSession is false for help and shell completion
func needsSession(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}
