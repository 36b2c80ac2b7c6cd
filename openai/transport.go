// Copyright (c) Enigmastation. All rights reserved.

package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/enigmastation/kgpt/chat"
)

const (
	// DefaultEndpoint is the OpenAI chat completions URL.
	DefaultEndpoint = "https://api.openai.com/v1/chat/completions"

	// DefaultConnectTimeout bounds connection establishment.
	DefaultConnectTimeout = 3 * time.Second

	// DefaultReadTimeout bounds the wait for a response.
	DefaultReadTimeout = 12 * time.Second

	// UserAgent is sent with every request. Some gateways reject
	// non-browser agents.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/77.0.3865.90 Safari/537.36"

	contentType       = "application/json; charset=utf-8"
	defaultTokenScope = "https://cognitiveservices.azure.com/.default"
)

// transport is an unexported interface for HTTP communication.
// The default implementation uses net/http; tests inject a mock.
type transport interface {
	post(ctx context.Context, body any) ([]byte, error)
}

// httpTransport is the default transport using net/http.
type httpTransport struct {
	client          *http.Client
	endpoint        string
	apiKey          string
	headers         map[string]string
	tokenCredential azcore.TokenCredential
	tokenScopes     []string
	logger          *slog.Logger
}

func newHTTPTransport(apiKey string, opts *clientConfig) *httpTransport {
	t := &httpTransport{
		client:          opts.httpClient,
		endpoint:        opts.endpoint,
		apiKey:          apiKey,
		headers:         opts.headers,
		tokenCredential: opts.tokenCredential,
		tokenScopes:     opts.tokenScopes,
		logger:          opts.logger,
	}
	if t.client == nil {
		t.client = newHTTPClient(opts.connectTimeout, opts.readTimeout)
	}
	if len(t.tokenScopes) == 0 {
		t.tokenScopes = []string{defaultTokenScope}
	}
	return t
}

// newHTTPClient builds a client whose total call timeout is connect+read.
func newHTTPClient(connect, read time.Duration) *http.Client {
	dialer := &net.Dialer{Timeout: connect, KeepAlive: 30 * time.Second}
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.DialContext = dialer.DialContext
	tr.TLSHandshakeTimeout = connect
	tr.ResponseHeaderTimeout = read
	return &http.Client{
		Transport: tr,
		Timeout:   connect + read,
	}
}

func (t *httpTransport) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return slog.Default()
}

func (t *httpTransport) post(ctx context.Context, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %w", chat.ErrChatClient, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", chat.ErrChatClient, err)
	}

	req.Header.Set("Content-Type", contentType)

	// Handle authentication
	if t.tokenCredential != nil {
		t.log().DebugContext(ctx, "acquiring Azure AD token", "scopes", t.tokenScopes)
		token, err := t.tokenCredential.GetToken(ctx, policy.TokenRequestOptions{
			Scopes: t.tokenScopes,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: get token: %w", chat.ErrChatClient, err)
		}
		t.log().DebugContext(ctx, "using Azure AD token authentication", "token_expires_on", token.ExpiresOn)
		req.Header.Set("Authorization", "Bearer "+token.Token)
	} else {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("User-Agent", UserAgent)

	t.log().DebugContext(ctx, "sending chat request", "endpoint", t.endpoint, "bytes", len(b))

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(fmt.Errorf("read response body: %w", err))
	}

	t.log().DebugContext(ctx, "received chat response", "status", resp.StatusCode, "bytes", len(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseErrorResponse(resp, respBody)
	}
	return respBody, nil
}

// transportError classifies a failure that produced no usable response.
func transportError(err error) error {
	var ne net.Error
	timeout := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &ne) && ne.Timeout())
	return &chat.TransportError{Timeout: timeout, Err: err}
}

// parseErrorResponse builds a typed error from a non-success response.
// The body is kept verbatim; the OpenAI error envelope is decoded when present.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var apiErr struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(body, &apiErr)

	return &chat.HTTPError{
		StatusCode: resp.StatusCode,
		Status:     statusText(resp),
		Body:       string(body),
		Message:    apiErr.Error.Message,
	}
}

// statusText returns the reason phrase of resp without the numeric code.
func statusText(resp *http.Response) string {
	s := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if s == "" {
		s = http.StatusText(resp.StatusCode)
	}
	return s
}

// validEndpoint reports whether raw is an absolute http(s) URL with a host.
func validEndpoint(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
