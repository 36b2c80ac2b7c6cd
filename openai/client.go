// Copyright (c) Enigmastation. All rights reserved.

package openai

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/enigmastation/kgpt/chat"
)

// Client sends conversations to an OpenAI-compatible Chat Completions
// endpoint. Use [New] to create one. A Client is immutable after
// construction and safe for concurrent use.
type Client struct {
	tp            transport
	model         string
	temperature   float64
	hasCredential bool
	endpointOK    bool
	logger        *slog.Logger
	handler       chat.Handler
}

// New creates a [Client] with the given API key and options. An empty key
// without a token credential yields a client whose sends return an empty
// result. New performs no network I/O.
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"),
//	    openai.WithModel("gpt-4o"),
//	)
func New(apiKey string, opts ...Option) *Client {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	c := &Client{
		tp:            newHTTPTransport(apiKey, cfg),
		model:         cfg.model,
		temperature:   cfg.temperature,
		hasCredential: apiKey != "" || cfg.tokenCredential != nil,
		endpointOK:    validEndpoint(cfg.endpoint),
		logger:        cfg.logger,
	}
	c.handler = chat.Chain(c.coreSend, cfg.middleware...)
	return c
}

// newWithTransport creates a Client with a custom transport (for testing).
func newWithTransport(tp transport, hasCredential bool) *Client {
	c := &Client{
		tp:            tp,
		model:         chat.DefaultModel,
		temperature:   chat.DefaultTemperature,
		hasCredential: hasCredential,
		endpointOK:    true,
	}
	c.handler = c.coreSend
	return c
}

// HasCredential reports whether the client was given an API key or a token
// credential.
func (c *Client) HasCredential() bool { return c.hasCredential }

// Send converts inputs into a conversation with the client's default model
// and temperature and sends it. Inputs are accepted in the forms described
// by [chat.Normalize].
//
// Without a credential Send returns an empty result before looking at
// inputs. Unsupported inputs fail with [chat.ErrInvalidArgument] before any
// network call.
func (c *Client) Send(ctx context.Context, inputs ...any) (chat.Result, error) {
	if !c.ready(ctx) {
		return chat.Empty(), nil
	}
	msgs, err := chat.Normalize(inputs...)
	if err != nil {
		return chat.Empty(), err
	}
	return c.handler(ctx, chat.Conversation{
		Messages:    msgs,
		Model:       c.model,
		Temperature: c.temperature,
	})
}

// SendConversation sends a caller-built conversation. Its temperature is
// used as is; an empty model falls back to the client default.
func (c *Client) SendConversation(ctx context.Context, conv chat.Conversation) (chat.Result, error) {
	if !c.ready(ctx) {
		return chat.Empty(), nil
	}
	if err := conv.Validate(); err != nil {
		return chat.Empty(), err
	}
	conv.Messages = slices.Clone(conv.Messages)
	if conv.Model == "" {
		conv.Model = c.model
	}
	return c.handler(ctx, conv)
}

// ready reports whether a request may be attempted at all. A missing
// credential or an unusable endpoint degrades to an empty result.
func (c *Client) ready(ctx context.Context) bool {
	if !c.hasCredential {
		return false
	}
	if !c.endpointOK {
		c.log().DebugContext(ctx, "endpoint is not a valid http(s) URL; skipping request")
		return false
	}
	return true
}

func (c *Client) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// coreSend is the base implementation called by the middleware chain.
func (c *Client) coreSend(ctx context.Context, conv chat.Conversation) (chat.Result, error) {
	body, err := c.tp.post(ctx, buildRequest(conv))
	if err != nil {
		return chat.Empty(), err
	}

	raw, err := unmarshalChatResponse(body)
	if err != nil {
		return chat.Empty(), fmt.Errorf("%w: parse response: %w", chat.ErrInvalidResponse, err)
	}

	return chat.Success(parseChatResponse(raw)), nil
}
