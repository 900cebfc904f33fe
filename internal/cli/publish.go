package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotpub/pkg/figure"
	"github.com/matzehuels/plotpub/pkg/plotly"
)

// publishFlags holds the flag values shared by the root and config commands.
type publishFlags struct {
	configPath string
	baseURL    string
	username   string
	timeout    time.Duration
	filename   string
	open       bool
}

func (f *publishFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/plotpub/config.toml)")
	pf.StringVar(&f.baseURL, "base-url", "", "plotting service URL (default "+plotly.DefaultBaseURL+")")
	pf.StringVar(&f.username, "username", "", "account to publish under (overrides PLOTLY_USERNAME)")
	pf.DurationVar(&f.timeout, "timeout", 0, "request timeout, 0 for none")

	cmd.Flags().StringVar(&f.filename, "filename", defaultFilename, "remote chart filename")
	cmd.Flags().BoolVar(&f.open, "open", false, "open the published chart in a browser")
}

// overrides copies explicitly set flags onto cfg.
func (f *publishFlags) overrides(cmd *cobra.Command, cfg *Config) {
	if f.baseURL != "" {
		cfg.Server.BaseURL = f.baseURL
	}
	if f.username != "" {
		cfg.Credentials.Username = f.username
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Server.Timeout = f.timeout
	}
}

// axesReversedFigure builds the demo figure: one scatter series over
// x=[1,2], y=[1,2] and an x-axis whose range is reversed.
func axesReversedFigure() (*figure.Figure, error) {
	series := figure.NewScatter([]float64{1, 2}, []float64{1, 2})

	layout := figure.NewLayout()
	if err := layout.SetAxis(figure.XAxis, figure.Axis{Autorange: figure.AutorangeReversed}); err != nil {
		return nil, err
	}

	return figure.New(layout, series)
}

// runPublish builds the demo figure and publishes it once.
func (c *CLI) runPublish(cmd *cobra.Command, flags *publishFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	fig, err := axesReversedFigure()
	if err != nil {
		return fmt.Errorf("build figure: %w", err)
	}
	logger.Debug("built figure", "series", len(fig.Data), "axes", fig.Layout.AxisNames())

	pub, err := c.newPublisher(cfg, logger)
	if err != nil {
		return err
	}

	opts := plotly.PublishOptions{
		Filename: flags.filename,
		AutoOpen: flags.open,
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Publishing %s...", opts.Filename))
	spinner.Start()

	url, err := pub.Publish(ctx, fig, opts)
	if err != nil {
		spinner.StopWithError("Publish failed")
		return fmt.Errorf("publish %s: %w", opts.Filename, err)
	}
	spinner.Stop()
	prog.done("Published figure")

	printSuccess("Published %s", StyleHighlight.Render(opts.Filename))
	printKeyValue("URL", StyleLink.Render(url))
	return nil
}
