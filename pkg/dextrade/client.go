// Package dextrade is a client for the Dex-Trade REST API.
//
// Public market-data endpoints need no credentials. Private endpoints are
// authenticated per request: the parameter set is canonically serialized,
// hashed together with the account secret, and the resulting signature is
// sent in an x-auth-sign header scoped to that one request.
package dextrade

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"dextrade/internal/ratelimit"
	"dextrade/internal/transport"
	"dextrade/pkg/core"
	"dextrade/pkg/sign"
)

// Client is a Dex-Trade API client. It is safe for concurrent use: all
// per-call state, including authentication headers, lives on the request.
type Client struct {
	config    *core.Config
	transport *transport.Client
	limiter   *ratelimit.Limiter
	logger    zerolog.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds construction options for the Client.
type Options struct {
	Logger zerolog.Logger
}

// WithLogger returns an option that sets the client logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// New creates a Client from config. The login-token and content-type
// headers are fixed on the transport here, once; nothing mutates them
// afterwards.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	options := &Options{
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	tr := transport.NewClient(&transport.Config{
		BaseURL:      config.BaseURL,
		LoginToken:   config.LoginToken,
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		RetryWaitMin: config.RetryWaitMin,
		RetryWaitMax: config.RetryWaitMax,
	}, options.Logger)

	var rl *ratelimit.Limiter
	if config.RateLimitRequests > 0 {
		rl = ratelimit.New(config.RateLimitRequests, config.RateLimitPeriod)
	}

	return &Client{
		config:    config,
		transport: tr,
		limiter:   rl,
		logger:    options.Logger,
	}, nil
}

// Close releases the transport resources.
func (c *Client) Close() error {
	return c.transport.Close()
}

// dispatch executes one API call. For private requests it fixes the
// request_id before signing, so the signed value and the transmitted value
// are byte-identical, then attaches x-auth-sign on the request-scoped
// header overlay. All failures surface to the caller; nothing is retried.
func (c *Client) dispatch(ctx context.Context, req *core.Request) ([]byte, error) {
	if req.Private {
		if !c.config.HasSecret() {
			return nil, core.ErrMissingSecret
		}
		if _, ok := req.Params["request_id"]; !ok {
			req.SetParam("request_id", nextRequestID())
		}
		signature, err := sign.Sign(req.Params, c.config.Secret)
		if err != nil {
			return nil, err
		}
		req.SetHeader("x-auth-sign", signature)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	opts := make([]transport.RequestOption, 0, len(req.Headers)+2)
	for k, v := range req.Headers {
		opts = append(opts, transport.WithHeader(k, v))
	}
	if req.Private {
		opts = append(opts, transport.WithNoRetry())
	}

	var resp *resty.Response
	var err error

	switch req.Method {
	case http.MethodGet:
		if len(req.Params) > 0 {
			opts = append(opts, transport.WithQueryParams(req.Params.StringMap()))
		}
		resp, err = c.transport.Get(ctx, req.Path, opts...)
	case http.MethodPost:
		resp, err = c.transport.Post(ctx, req.Path, req.Params, opts...)
	default:
		return nil, fmt.Errorf("unsupported http method: %s", req.Method)
	}

	if err != nil {
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}

	body := resp.Bytes()
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, core.NewAPIError(resp.StatusCode(), body, errorMessage(body))
	}

	return body, nil
}
