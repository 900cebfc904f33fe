// Package figure provides the chart description submitted to the plotting service.
//
// A [Figure] combines one or more [Scatter] series with a [Layout] of axis
// overrides. The types marshal to the plotly JSON wire format, so a figure
// can be handed directly to the publishing client in pkg/plotly.
//
// # Core Types
//
//   - [Scatter]: One trace of paired x/y values
//   - [Layout]: Mapping from axis identifier to [Axis] directives
//   - [Axis]: Display directives for a single axis (autorange, type, range)
//   - [Figure]: Series plus layout, validated as a unit
//
// # Axis Identifiers
//
// Layout keys must be recognized axis identifiers: "xaxis", "yaxis", or a
// numbered form such as "xaxis2" or "yaxis11". Unknown keys are rejected by
// [Layout.SetAxis] with INVALID_AXIS.
//
// # Example
//
//	layout := figure.NewLayout()
//	if err := layout.SetAxis(figure.XAxis, figure.Axis{Autorange: figure.AutorangeReversed}); err != nil {
//	    return err
//	}
//	fig, err := figure.New(layout, figure.NewScatter([]float64{1, 2}, []float64{1, 2}))
//
// The resulting JSON:
//
//	{
//	  "data": [{"type": "scatter", "x": [1, 2], "y": [1, 2], "uid": "..."}],
//	  "layout": {"xaxis": {"autorange": "reversed"}}
//	}
package figure
