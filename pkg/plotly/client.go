package plotly

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/plotpub/pkg/buildinfo"
	"github.com/matzehuels/plotpub/pkg/errors"
	"github.com/matzehuels/plotpub/pkg/figure"
	"github.com/matzehuels/plotpub/pkg/observability"
)

const (
	// DefaultBaseURL is the hosted plotly service.
	DefaultBaseURL = "https://plot.ly"

	// clientrespPath is the endpoint figures are posted to.
	clientrespPath = "/clientresp"

	// platform identifies this client to the service.
	platform = "go"

	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 1 << 20
)

// File options understood by the service.
const (
	FileOptOverwrite = "overwrite"
	FileOptNew       = "new"
	FileOptAppend    = "append"
	FileOptExtend    = "extend"
)

// Config holds the settings for a [Client].
type Config struct {
	BaseURL     string        // Defaults to DefaultBaseURL
	Credentials Credentials   // Required
	Timeout     time.Duration // Zero means no client-side timeout
	HTTPClient  *http.Client  // Overrides the default client; Timeout is then ignored
	Logger      *log.Logger   // Defaults to log.Default()
}

// PublishOptions controls how a figure is stored remotely.
type PublishOptions struct {
	Filename      string // Remote chart name; creates or updates the chart
	AutoOpen      bool   // Open the returned URL in the system browser
	FileOpt       string // One of the FileOpt* constants; defaults to FileOptOverwrite
	WorldReadable *bool  // Defaults to true
}

func (o PublishOptions) fileOpt() string {
	if o.FileOpt == "" {
		return FileOptOverwrite
	}
	return o.FileOpt
}

func (o PublishOptions) worldReadable() bool {
	if o.WorldReadable == nil {
		return true
	}
	return *o.WorldReadable
}

// Client publishes figures to the plotting service.
type Client struct {
	http    *http.Client
	baseURL string
	creds   Credentials
	logger  *log.Logger
	open    func(string) error
}

// NewClient creates a Client after validating the credential pair and base URL.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Credentials.Validate(); err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if err := errors.ValidateURL(baseURL); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Client{
		http:    httpClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		creds:   cfg.Credentials,
		logger:  logger,
		open:    OpenBrowser,
	}, nil
}

// BaseURL returns the service root the client posts to.
func (c *Client) BaseURL() string { return c.baseURL }

// Username returns the account figures are published under.
func (c *Client) Username() string { return c.creds.Username }

// response is the JSON body returned by the clientresp endpoint.
type response struct {
	URL      string `json:"url"`
	Message  string `json:"message"`
	Warning  string `json:"warning"`
	Error    string `json:"error"`
	Filename string `json:"filename"`
}

// Publish sends fig to the service under opts.Filename and returns the URL
// of the hosted chart. It makes exactly one request and never retries.
func (c *Client) Publish(ctx context.Context, fig *figure.Figure, opts PublishOptions) (string, error) {
	if err := fig.Validate(); err != nil {
		return "", err
	}
	if err := errors.ValidateFilename(opts.Filename); err != nil {
		return "", err
	}
	switch opts.fileOpt() {
	case FileOptOverwrite, FileOptNew, FileOptAppend, FileOptExtend:
	default:
		return "", errors.New(errors.ErrCodeInvalidConfig, "unknown fileopt %q", opts.FileOpt)
	}

	form, err := c.form(fig, opts)
	if err != nil {
		return "", err
	}

	start := time.Now()
	observability.Publish().OnPublishStart(ctx, opts.Filename, len(fig.Data))
	resp, err := c.post(ctx, form)
	var chartURL string
	if resp != nil {
		chartURL = resp.URL
	}
	observability.Publish().OnPublishComplete(ctx, opts.Filename, chartURL, time.Since(start), err)
	if err != nil {
		return "", err
	}

	if resp.Warning != "" {
		c.logger.Warn("plotting service warning", "warning", resp.Warning)
	}
	if resp.Message != "" {
		c.logger.Debug("plotting service message", "message", resp.Message)
	}

	if opts.AutoOpen {
		if err := c.open(chartURL); err != nil {
			c.logger.Warn("could not open browser", "url", chartURL, "err", err)
		}
	}
	return chartURL, nil
}

func (c *Client) form(fig *figure.Figure, opts PublishOptions) (url.Values, error) {
	args, err := fig.TracesJSON()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFigure, err, "encode traces")
	}
	layout, err := fig.LayoutJSON()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFigure, err, "encode layout")
	}
	kwargs, err := json.Marshal(map[string]any{
		"filename":       opts.Filename,
		"fileopt":        opts.fileOpt(),
		"world_readable": opts.worldReadable(),
		"layout":         json.RawMessage(layout),
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFigure, err, "encode kwargs")
	}

	form := url.Values{}
	form.Set("un", c.creds.Username)
	form.Set("key", c.creds.APIKey)
	form.Set("origin", "plot")
	form.Set("platform", platform)
	form.Set("version", buildinfo.Version)
	form.Set("args", string(args))
	form.Set("kwargs", string(kwargs))
	return form, nil
}

func (c *Client) post(ctx context.Context, form url.Values) (*response, error) {
	endpoint := c.baseURL + clientrespPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build request")
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "plotpub/"+buildinfo.Version)
	req.Header.Set("X-Request-ID", requestID)

	host, path := req.URL.Host, req.URL.Path
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	c.logger.Debug("posting figure", "url", endpoint, "user", c.creds.Username, "request_id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, transportError(err, endpoint)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, transportError(err, endpoint)
	}

	var out response
	decodeErr := json.Unmarshal(body, &out)

	if err := checkStatus(resp.StatusCode, out.Error); err != nil {
		return nil, err
	}
	if decodeErr != nil {
		return nil, errors.Wrap(errors.ErrCodeRejected, decodeErr, "decode response")
	}
	if out.Error != "" {
		return nil, serviceError(out.Error)
	}
	if out.URL == "" {
		return nil, errors.New(errors.ErrCodeRejected, "response did not include a chart URL")
	}
	return &out, nil
}

func checkStatus(code int, detail string) error {
	if detail == "" {
		detail = http.StatusText(code)
	}
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return errors.New(errors.ErrCodeUnauthorized, "status %d: %s", code, detail)
	case code >= 500:
		return errors.New(errors.ErrCodeNetwork, "status %d: %s", code, detail)
	default:
		return errors.New(errors.ErrCodeRejected, "status %d: %s", code, detail)
	}
}

var authMarkers = []string{"sign in", "signed in", "credentials", "api key", "authenticat", "unauthorized"}

// serviceError classifies an error message reported in a 200 response.
func serviceError(msg string) error {
	lower := strings.ToLower(msg)
	for _, marker := range authMarkers {
		if strings.Contains(lower, marker) {
			return errors.New(errors.ErrCodeUnauthorized, "%s", msg)
		}
	}
	return errors.New(errors.ErrCodeRejected, "%s", msg)
}

func transportError(err error, endpoint string) error {
	if stderrors.Is(err, context.Canceled) {
		return err
	}
	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return errors.Wrap(errors.ErrCodeTimeout, err, "post %s", endpoint)
	}
	return errors.Wrap(errors.ErrCodeNetwork, err, "post %s", endpoint)
}

// String implements fmt.Stringer for debug output.
func (c *Client) String() string {
	return fmt.Sprintf("plotly.Client{%s @ %s}", c.creds, c.baseURL)
}
