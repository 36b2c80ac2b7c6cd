// Copyright (c) Enigmastation. All rights reserved.

package openai

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/enigmastation/kgpt/chat"
)

// clientConfig holds resolved configuration for the client.
type clientConfig struct {
	endpoint        string
	connectTimeout  time.Duration
	readTimeout     time.Duration
	httpClient      *http.Client
	headers         map[string]string
	model           string
	temperature     float64
	tokenCredential azcore.TokenCredential
	tokenScopes     []string
	middleware      []chat.Middleware
	logger          *slog.Logger
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		endpoint:       DefaultEndpoint,
		connectTimeout: DefaultConnectTimeout,
		readTimeout:    DefaultReadTimeout,
		model:          chat.DefaultModel,
		temperature:    chat.DefaultTemperature,
	}
}

// Option configures a [Client].
type Option func(*clientConfig)

// WithEndpoint overrides the chat completions URL (e.g., for gateways or proxies).
func WithEndpoint(url string) Option {
	return func(c *clientConfig) { c.endpoint = url }
}

// WithConnectTimeout bounds connection establishment. Non-positive values are ignored.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		if d > 0 {
			c.connectTimeout = d
		}
	}
}

// WithReadTimeout bounds the wait for the response. Non-positive values are ignored.
func WithReadTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		if d > 0 {
			c.readTimeout = d
		}
	}
}

// WithHTTPClient provides a custom http.Client for requests.
// The connect and read timeouts are not applied to a custom client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = client }
}

// WithHeaders adds custom headers to every request.
// The User-Agent header cannot be overridden.
func WithHeaders(headers map[string]string) Option {
	return func(c *clientConfig) { c.headers = headers }
}

// WithModel sets the default model for requests.
func WithModel(model string) Option {
	return func(c *clientConfig) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTemperature sets the default sampling temperature for requests.
func WithTemperature(t float64) Option {
	return func(c *clientConfig) { c.temperature = t }
}

// WithTokenCredential enables Azure AD token authentication using the provided credential.
// When set, the client obtains a bearer token per request instead of using the API key.
// Scopes default to the Cognitive Services scope.
func WithTokenCredential(cred azcore.TokenCredential, scopes ...string) Option {
	return func(c *clientConfig) {
		c.tokenCredential = cred
		c.tokenScopes = scopes
	}
}

// WithMiddleware adds middleware to the send pipeline.
// Middleware is applied in the order provided (first = outermost).
func WithMiddleware(mw ...chat.Middleware) Option {
	return func(c *clientConfig) { c.middleware = append(c.middleware, mw...) }
}

// WithLogger sets the logger used for transport debug output.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}
