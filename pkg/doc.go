// Package pkg provides the libraries behind plotpub.
//
// # Overview
//
// plotpub builds a chart description and publishes it to a hosted plotly
// service. The pkg directory is organized as:
//
//  1. [figure] - Chart description (series, axis layout, figure)
//  2. [plotly] - Publishing client for the plotly REST API
//  3. [errors] - Structured error codes shared by the client and CLI
//  4. [observability] - Optional hooks for publish and HTTP events
//  5. [buildinfo] - Version information injected at build time
//
// # Data Flow
//
//	figure.NewScatter + figure.NewLayout
//	         ↓
//	    figure.New (validate)
//	         ↓
//	    plotly.Client.Publish (one POST, no retries)
//	         ↓
//	    chart URL
//
// # Quick Start
//
//	layout := figure.NewLayout()
//	_ = layout.SetAxis(figure.XAxis, figure.Axis{Autorange: figure.AutorangeReversed})
//	fig, err := figure.New(layout, figure.NewScatter([]float64{1, 2}, []float64{1, 2}))
//	if err != nil {
//	    return err
//	}
//
//	client, err := plotly.NewClient(plotly.Config{
//	    Credentials: plotly.Credentials{Username: user, APIKey: key},
//	})
//	if err != nil {
//	    return err
//	}
//	url, err := client.Publish(ctx, fig, plotly.PublishOptions{Filename: "axes-reversed"})
//
// [figure]: https://pkg.go.dev/github.com/matzehuels/plotpub/pkg/figure
// [plotly]: https://pkg.go.dev/github.com/matzehuels/plotpub/pkg/plotly
// [errors]: https://pkg.go.dev/github.com/matzehuels/plotpub/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/plotpub/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/plotpub/pkg/buildinfo
package pkg
