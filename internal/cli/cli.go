// Package cli implements the graphwalk command-line interface.
//
// This package provides commands for building graphs on an interactive
// terminal board, tracing algorithm runs as plain event logs, and listing
// the supported algorithms. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - board: Build a graph interactively and replay algorithm runs on it
//   - trace: Run an algorithm over a generated graph and print every event
//   - algorithms: List the supported algorithms
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/graphwalk/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "graphwalk"

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
	Config Config
}

// New creates a new CLI instance with a default logger and the on-disk
// configuration. A broken config file is logged and replaced with defaults
// so the CLI always starts.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	cfg, err := loadConfig()
	if err != nil {
		c.Logger.Warn("ignoring config file", "err", err)
		cfg = defaultConfig()
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Graphwalk replays graph algorithms step by step",
		Long:         `Graphwalk is a CLI tool for watching classic graph algorithms work: build a graph on a terminal board or scatter a random one, then replay DFS, BFS, Dijkstra, or Kruskal one event at a time.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.boardCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.algorithmsCommand())
	root.AddCommand(c.completionCommand())

	return root
}
