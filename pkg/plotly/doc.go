// Package plotly publishes figures to a hosted plotly service.
//
// # Overview
//
// [Client] is a credentialed client for the plotly REST "clientresp"
// endpoint. A single [Client.Publish] call sends one figure and returns the
// URL of the hosted chart:
//
//	client, err := plotly.NewClient(plotly.Config{
//	    Credentials: plotly.Credentials{Username: "TestBot", APIKey: key},
//	})
//	url, err := client.Publish(ctx, fig, plotly.PublishOptions{
//	    Filename: "axes-reversed",
//	})
//
// The chart is created or, with the default [FileOptOverwrite], replaced
// in place under the given filename.
//
// # Wire Format
//
// Publish sends one form-encoded POST to {BaseURL}/clientresp with the fields
// un, key, origin, platform, version, args (JSON array of traces) and kwargs
// (JSON object with filename, fileopt, world_readable and layout). The
// service answers with a JSON object carrying url, message, warning and error.
//
// # Errors
//
// Publish never retries. Failures are reported with pkg/errors codes:
//
//   - UNAUTHORIZED: the service rejected the credential pair
//   - NETWORK_ERROR, TIMEOUT: transport failures and 5xx responses
//   - INVALID_FIGURE, INVALID_AXIS, INVALID_FILENAME: local validation
//   - REJECTED: the service refused the figure
package plotly
