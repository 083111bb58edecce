// Package cli implements the algotrace command-line interface.
//
// # Commands
//
//   - list: Show every registered algorithm
//   - show: Print an algorithm's parameters and pseudocode
//   - trace: Generate a trace and export it as JSON, YAML or text
//   - play: Step through a trace in an interactive terminal player
//   - render: Draw one graph or tree step as SVG or DOT
//   - serve: Serve traces over HTTP
//   - config: Show the configuration file location and effective settings
//   - completion: Generate shell completion scripts
//
// Algorithm parameters are passed as repeated --set name=value flags and use
// the same text grammar everywhere (see package input).
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Generation,
// playback and render events are logged through observability hooks that
// the root command installs.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/algotrace/internal/config"
	"github.com/matzehuels/algotrace/pkg/buildinfo"
	"github.com/matzehuels/algotrace/pkg/catalog"
	"github.com/matzehuels/algotrace/pkg/errors"
	"github.com/matzehuels/algotrace/pkg/trace"
)

// appName is the application name used for display.
const appName = "algotrace"

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
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and built-in
// settings. The root command loads the configuration file before any
// subcommand runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
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
		Short:        "algotrace turns algorithms into step-by-step traces",
		Long:         `algotrace runs classic algorithms on your input and records every step as a snapshot you can replay in the terminal, export, or serve to a renderer.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/algotrace/config.toml)")

	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and attaches the logger to the context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	installHooks(c.Logger)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("config loaded", "speed", cfg.Playback.Speed, "addr", cfg.Server.Addr, "max_steps", cfg.Trace.MaxSteps)
	return nil
}

// =============================================================================
// Generation
// =============================================================================

// generate looks up name, runs it with params and applies the step limit.
func (c *CLI) generate(ctx context.Context, name string, params map[string]string) (*catalog.Algorithm, trace.Trace, error) {
	alg, err := catalog.Lookup(name)
	if err != nil {
		return nil, trace.Trace{}, err
	}
	t, err := alg.Run(ctx, params)
	if err != nil {
		return alg, trace.Trace{}, err
	}
	if err := catalog.CheckSteps(t, c.Config.Trace.MaxSteps); err != nil {
		return alg, trace.Trace{}, err
	}
	return alg, t, nil
}

// parseSets turns repeated "name=value" flags into a parameter map. Later
// flags win.
func parseSets(sets []string) (map[string]string, error) {
	params := make(map[string]string, len(sets))
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--set %q: expected name=value", s)
		}
		params[name] = value
	}
	return params, nil
}

// completeAlgorithms offers registered algorithm names for the first
// positional argument.
func completeAlgorithms(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, a := range catalog.All() {
		if strings.HasPrefix(a.Name, toComplete) {
			out = append(out, a.Name+"\t"+a.Title)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
