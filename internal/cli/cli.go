package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/config"
)

// Options selects the storage behind a CLI session
type Options struct {
	// DBPath overrides the configured SQLite path
	DBPath string
	// Memory keeps the board in memory for this process only
	Memory bool
}

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
}

// NewCLI loads the config and opens the board storage
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	appOpts := []app.Option{app.WithLogger(slog.Default())}
	if opts.Memory || cfg.Storage.Memory {
		appOpts = append(appOpts, app.WithMemoryStore())
	} else {
		path := opts.DBPath
		if path == "" {
			path, err = cfg.StoragePath()
			if err != nil {
				return nil, fmt.Errorf("failed to resolve storage path: %w", err)
			}
		}
		appOpts = append(appOpts, app.WithDBPath(path))
	}

	application, err := app.New(ctx, appOpts...)
	if err != nil {
		return nil, err
	}

	return &CLI{
		App:    application,
		Config: cfg,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
