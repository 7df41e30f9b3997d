package meteo

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds each request unless overridden with WithTimeout.
const DefaultTimeout = 30 * time.Second

// Client performs synchronous GET requests against the Open-Meteo
// endpoints and decodes their JSON responses. It holds a long-lived
// connection pool which is reused across calls and is safe for concurrent
// use, though nothing in this package issues concurrent requests.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(timeout) }
}

// WithLogger attaches a logger; requests are logged at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient replaces the underlying HTTP client, reusing its
// connection pool. Apply it before WithTimeout when combining both.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = resty.NewWithClient(hc) }
}

// NewClient creates a Client with the default timeout and no logging.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http: resty.New().SetTimeout(DefaultTimeout),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases idle connections held by the underlying pool. It is safe
// to call more than once.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

// fetch performs exactly one GET against the endpoint and returns the raw
// body. Non-2xx responses become a *RequestError carrying the server
// supplied reason; transport failures are wrapped and propagated as-is.
func (c *Client) fetch(ctx context.Context, endpoint string, params Params) ([]byte, error) {
	start := time.Now()

	response, err := c.http.R().SetContext(ctx).SetQueryParams(params).Get(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "requesting %s", endpoint)
	}

	c.log.Debug().
		Str("endpoint", endpoint).
		Int("status", response.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if !response.IsSuccess() {
		return nil, &RequestError{
			StatusCode: response.StatusCode(),
			Reason:     extractReason(response.Body()),
		}
	}

	return response.Body(), nil
}

// fetchJSON performs one GET and returns the decoded body unchanged
// structurally.
func (c *Client) fetchJSON(ctx context.Context, endpoint string, params Params) (map[string]any, error) {
	body, err := c.fetch(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	results := make(map[string]any)
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, errors.Wrapf(err, "decoding response from %s", endpoint)
	}

	return results, nil
}

// FetchDecoded performs one GET and unmarshals the body into out. It is
// used by endpoints with a fixed response shape such as geocoding and
// elevation.
func (c *Client) FetchDecoded(ctx context.Context, endpoint string, params Params, out any) error {
	body, err := c.fetch(ctx, endpoint, params)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decoding response from %s", endpoint)
	}

	return nil
}

func extractReason(body []byte) string {
	var payload struct {
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Reason != "" {
		return payload.Reason
	}
	return strings.TrimSpace(string(body))
}

func requireParams(params Params, keys ...string) error {
	for _, key := range keys {
		if _, ok := params[key]; !ok {
			return &MissingFieldError{Field: key}
		}
	}
	return nil
}
