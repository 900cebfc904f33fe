// Package cli implements the plotpub command-line interface.
//
// Running plotpub with no subcommand builds the axes-reversed demo figure
// (one scatter series over x=[1,2], y=[1,2] with a reversed x-axis) and
// publishes it to the plotting service as "axes-reversed". The chart URL is
// printed on success; any failure is returned unretried and the process
// exits nonzero.
//
// # Commands
//
//   - (root): Publish the demo figure
//   - config: Show the resolved configuration with the API key masked
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Credentials come from flags, the PLOTLY_USERNAME and PLOTLY_API_KEY
// environment variables, or a TOML file (see [Config]).
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotpub/pkg/buildinfo"
	"github.com/matzehuels/plotpub/pkg/figure"
	"github.com/matzehuels/plotpub/pkg/observability"
	"github.com/matzehuels/plotpub/pkg/plotly"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "plotpub"

	// defaultFilename is the remote name the demo figure is published under.
	defaultFilename = "axes-reversed"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// Publisher
// =============================================================================

// Publisher sends a figure to a plotting service and returns the chart URL.
// *plotly.Client satisfies it.
type Publisher interface {
	Publish(ctx context.Context, fig *figure.Figure, opts plotly.PublishOptions) (string, error)
}

// PublisherFactory builds a Publisher from the resolved configuration.
type PublisherFactory func(cfg Config, logger *log.Logger) (Publisher, error)

// newPlotlyPublisher is the default PublisherFactory.
func newPlotlyPublisher(cfg Config, logger *log.Logger) (Publisher, error) {
	return plotly.NewClient(plotly.Config{
		BaseURL:     cfg.Server.BaseURL,
		Credentials: cfg.Credentials,
		Timeout:     cfg.Server.Timeout,
		Logger:      logger,
	})
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	newPublisher PublisherFactory
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:       newLogger(w, level),
		newPublisher: newPlotlyPublisher,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetPublisherFactory replaces how the publishing capability is built.
// Nil restores the plotly client.
func (c *CLI) SetPublisherFactory(f PublisherFactory) {
	if f == nil {
		f = newPlotlyPublisher
	}
	c.newPublisher = f
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself publishes the demo figure.
func (c *CLI) RootCommand() *cobra.Command {
	opts := &publishFlags{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Publish a scatter plot with a reversed x-axis",
		Long:          `plotpub builds a scatter plot of x=[1,2], y=[1,2] with the x-axis range reversed and publishes it to a hosted plotly service, printing the chart URL.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := &logHooks{logger: c.Logger}
			observability.SetHTTPHooks(hooks)
			observability.SetPublishHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPublish(cmd, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	opts.register(root)

	root.AddCommand(c.configCommand(opts))
	root.AddCommand(c.completionCommand())

	return root
}
