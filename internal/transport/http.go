// Package transport wraps the resty HTTP client used for all REST calls.
//
// Persistent headers (login-token, content-type) are applied to the
// underlying client exactly once at construction. Everything request
// specific, including the x-auth-sign header, travels on the per-request
// object so concurrent calls never share mutable header state.
package transport

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"dextrade/pkg/core"
)

// Config holds the transport settings fixed at construction.
type Config struct {
	BaseURL string
	// LoginToken, when set, is sent as a login-token header on every
	// request.
	LoginToken   string
	Timeout      time.Duration
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Client is the HTTP transport for the exchange API.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
	mu     sync.RWMutex
	closed bool
}

// RequestOption mutates one outgoing request before it is sent.
type RequestOption func(*resty.Request)

// NewClient creates the transport. JSON bodies are encoded and decoded
// with sonic, and request/response lines are logged at debug level.
func NewClient(config *Config, logger zerolog.Logger) *Client {
	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetTimeout(config.Timeout)
	client.SetRetryCount(config.MaxRetries)
	client.SetRetryWaitTime(config.RetryWaitMin)
	client.SetRetryMaxWaitTime(config.RetryWaitMax)
	client.AddContentTypeEncoder("application/json", func(w io.Writer, v any) error {
		data, err := sonic.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
	client.AddContentTypeDecoder("application/json", func(r io.Reader, v any) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		return sonic.Unmarshal(data, v)
	})

	client.SetHeader("content-type", "application/json")
	if config.LoginToken != "" {
		client.SetHeader("login-token", config.LoginToken)
	}

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})

	client.AddResponseMiddleware(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Int("size", len(resp.Bytes())).
			Msg("http response")
		return nil
	})

	return &Client{
		client: client,
		logger: logger,
	}
}

// Close releases the underlying connections. Further calls return
// an error.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}

// Get performs a GET request to path with the given options.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*resty.Response, error) {
	req, err := c.request(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return req.Get(path)
}

// Post performs a POST request to path with the given JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*resty.Response, error) {
	req, err := c.request(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return req.SetBody(body).Post(path)
}

func (c *Client) request(ctx context.Context, opts ...RequestOption) (*resty.Request, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, fmt.Errorf("transport: %w", core.ErrClientClosed)
	}

	req := c.client.R().SetContext(ctx)
	for _, opt := range opts {
		opt(req)
	}
	return req, nil
}

// WithHeader sets a request-scoped header.
func WithHeader(key, value string) RequestOption {
	return func(r *resty.Request) {
		r.SetHeader(key, value)
	}
}

// WithQueryParams sets request-scoped query parameters.
func WithQueryParams(params map[string]string) RequestOption {
	return func(r *resty.Request) {
		r.SetQueryParams(params)
	}
}

// WithNoRetry disables retries for one request. Signed requests use this:
// replaying a request bound to a consumed request_id would be rejected.
func WithNoRetry() RequestOption {
	return func(r *resty.Request) {
		r.SetRetryCount(0)
	}
}
