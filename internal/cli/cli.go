// Package cli implements the textmorph command-line interface.
//
// This package provides commands for applying text augmentations, running
// pipeline definitions, scoring metadata records, and managing the result
// cache. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - augment: Apply one transform family to a batch of texts
//   - run: Execute a TOML pipeline definition
//   - intensity: Score saved metadata records
//   - fixtures: Write or check golden metadata records
//   - preview: Interactively try transforms on a sample text
//   - viz: Render a pipeline definition as a diagram
//   - cache: Manage the result cache
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/textmorph/textmorph/pkg/buildinfo"
	"github.com/textmorph/textmorph/pkg/cache"
	"github.com/textmorph/textmorph/pkg/errors"
	"github.com/textmorph/textmorph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "textmorph"

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
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Textmorph augments text with composable transforms",
		Long:         `Textmorph is a CLI tool for applying randomized, composable text transformations with full provenance metadata and derived intensity scores.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.augmentCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.intensityCommand())
	root.AddCommand(c.fixturesCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.vizCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := os.Getenv("TEXTMORPH_REDIS_URL"); url != "" {
		return cache.NewRedisCacheFromURL(context.Background(), url)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/textmorph/).
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

// =============================================================================
// Input Helpers
// =============================================================================

// readTexts assembles the input batch: positional args win, then an input
// file with one text per line, then stdin when piped.
func readTexts(args []string, inputFile string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var r io.Reader
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open input file %s", inputFile)
		}
		defer f.Close()
		r = f
	} else if stdin != nil {
		r = stdin
	} else {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no input texts: pass arguments, --input, or pipe to stdin")
	}

	var texts []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read input texts")
	}
	if len(texts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no input texts: input was empty")
	}
	return texts, nil
}
