// Package cli implements the typescale command-line interface.
//
// This package provides commands for building the typographic theme from a
// constants file, previewing the scale in the terminal, and serving a live
// preview of the generated stylesheet. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - build: Generate the theme artifacts (JSON, CSS)
//   - preview: Show the converted scale as a terminal table
//   - serve: Run a local dev server with a rendered specimen page
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhartvig/typescale/pkg/buildinfo"
)

// appName is the application name used for display and file naming.
const appName = "typescale"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

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
		Short:        "typescale derives a typographic theme from pixel constants",
		Long:         `typescale turns a small table of pixel constants (body size, line height, heading sizes) into a structured theme with three content-density presets (DEFAULT, small, large), expressed in rem units for a static-site styling pipeline.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
