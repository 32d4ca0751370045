// Package cli implements the mstviz command-line interface.
//
// This package wires the trace builders, the playback session, the renderers
// and the HTTP server into cobra commands. Logging goes through
// charmbracelet/log; settings come from the TOML file loaded by the config
// package and can be overridden per command with flags.
//
// # Commands
//
//   - trace:    print every step of a Kruskal or Prim run
//   - play:     step through a run interactively (bubbletea), or auto-play it
//   - export:   write a trace as JSON or YAML
//   - dot:      write one step as Graphviz DOT or SVG
//   - generate: write a generated graph in the text format
//   - serve:    run the HTTP API
//   - config:   print the effective configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstviz/config"
)

// appName is the application name used for display.
const appName = "mstviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfgPath string
	cfg     config.Config
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Config returns the configuration loaded for the running command.
func (c *CLI) Config() config.Config { return c.cfg }

// RootCommand creates the root cobra command with all subcommands registered.
//
// Its PersistentPreRunE loads the configuration (--config, or the default
// path), applies log_level and attaches the logger to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "mstviz traces Kruskal's and Prim's algorithms step by step",
		Long:         `mstviz builds minimum spanning trees with Kruskal's or Prim's algorithm and records every decision as a replayable step trace, for terminals, files and HTTP clients.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.cfgPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.Logger.SetLevel(cfg.Level())
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().StringVar(&c.cfgPath, "config", "", "config file (default "+config.DefaultPath()+")")

	root.AddCommand(c.traceCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())

	return root
}
