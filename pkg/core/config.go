package core

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Default endpoints for the production environment.
const (
	ProductionURL = "https://api.dex-trade.com/v1"
	SocketURL     = "https://socket.dex-trade.com"
)

// Environment variable names read by FromEnv.
const (
	EnvBaseURL    = "DEXTRADE_BASE_URL"
	EnvSocketURL  = "DEXTRADE_SOCKET_URL"
	EnvLoginToken = "DEXTRADE_LOGIN_TOKEN"
	EnvSecret     = "DEXTRADE_SECRET"
)

// Config contains all configuration options for a client.
// It includes endpoints, credentials, networking, and rate limiting settings.
type Config struct {
	// BaseURL is the REST API root for public and private endpoints.
	BaseURL string `json:"base_url" validate:"required,url"`
	// SocketURL is the real-time feed root. It is carried for completeness
	// but never dialed by this client.
	SocketURL string `json:"socket_url" validate:"omitempty,url"`

	// LoginToken identifies the account. Sent as a persistent login-token
	// header when set.
	LoginToken string `json:"login_token,omitempty"`
	// Secret is the private key used for signing requests. It is never
	// transmitted.
	Secret string `json:"secret,omitempty"`

	// Timeout is the maximum duration for HTTP requests.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`
	// MaxRetries applies to public GET requests only. Signed requests are
	// never retried: a retry would replay a stale request_id.
	MaxRetries   int           `json:"max_retries" validate:"min=0"`
	RetryWaitMin time.Duration `json:"retry_wait_min" validate:"min=0"`
	RetryWaitMax time.Duration `json:"retry_wait_max" validate:"min=0"`

	RateLimitRequests int           `json:"rate_limit_requests" validate:"min=0"`
	RateLimitPeriod   time.Duration `json:"rate_limit_period" validate:"min=0"`
}

// DefaultConfig returns a Config initialized with the production endpoints
// and sensible defaults: 10s timeout, no retries, and a 600
// requests/minute client-side rate limit. Callers that opt in to retries
// via MaxRetries get them on public GETs only.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   ProductionURL,
		SocketURL: SocketURL,

		Timeout:      10 * time.Second,
		MaxRetries:   0,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: 1 * time.Second,

		RateLimitRequests: 600,
		RateLimitPeriod:   time.Minute,
	}
}

// FromEnv builds a Config from environment variables, loading a .env file
// first if one exists in the working directory. Unset variables fall back
// to the defaults from DefaultConfig.
func FromEnv() *Config {
	_ = godotenv.Load()

	config := DefaultConfig()
	if v := os.Getenv(EnvBaseURL); v != "" {
		config.BaseURL = v
	}
	if v := os.Getenv(EnvSocketURL); v != "" {
		config.SocketURL = v
	}
	if v := os.Getenv(EnvLoginToken); v != "" {
		config.LoginToken = v
	}
	if v := os.Getenv(EnvSecret); v != "" {
		config.Secret = v
	}
	return config
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// HasSecret reports whether a signing secret is configured.
func (c *Config) HasSecret() bool {
	return c.Secret != ""
}

// WithCredentials sets the login token and signing secret and returns the
// config for chaining.
func (c *Config) WithCredentials(loginToken, secret string) *Config {
	c.LoginToken = loginToken
	c.Secret = secret
	return c
}

// WithBaseURL overrides the REST root and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithRateLimit sets the client-side rate limit and returns the config for
// chaining. A zero requests value disables rate limiting.
func (c *Config) WithRateLimit(requests int, period time.Duration) *Config {
	c.RateLimitRequests = requests
	c.RateLimitPeriod = period
	return c
}
