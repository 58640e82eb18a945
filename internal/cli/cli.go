package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seedbed/pkg/buildinfo"
	"github.com/matzehuels/seedbed/pkg/cache"
	"github.com/matzehuels/seedbed/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "seedbed"

	// redisURLEnv selects the shared redis cache when set.
	redisURLEnv = "SEEDBED_REDIS_URL"

	// redisKeyPrefix namespaces seedbed keys in a shared redis instance.
	redisKeyPrefix = "seedbed:"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Seedbed lays out plants in garden beds",
		Long:         `Seedbed computes plant positions for rectangular and circular garden beds from a spacing, a packing pattern and a fill policy, and splits shared beds into regions so several plant groups never overlap.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.placeCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.capacityCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	store, keyer := c.newCache(ctx, noCache)
	return pipeline.NewRunner(store, keyer, c.Logger)
}

// newCache picks the cache backend: none, redis when SEEDBED_REDIS_URL is set
// and reachable, otherwise the file cache. Any failure falls back to the next
// option, ending at no cache.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, cache.Keyer) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	if url := os.Getenv(redisURLEnv); url != "" {
		rc, err := cache.NewRedisCache(url)
		if err == nil {
			err = rc.Ping(ctx)
			if err == nil {
				c.Logger.Debug("using redis cache")
				return rc, cache.NewScopedKeyer(cache.NewDefaultKeyer(), redisKeyPrefix)
			}
			rc.Close()
		}
		c.Logger.Warn("redis cache unavailable, using file cache", "err", err)
	}

	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory", "err", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable", "dir", dir, "err", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/seedbed/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
