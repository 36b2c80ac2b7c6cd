// Copyright (c) Enigmastation. All rights reserved.

package chat_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/enigmastation/kgpt/chat"
)

func TestErrorSentinelChain(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		match  bool
	}{
		{"ErrInvalidArgument wraps ErrChatClient", chat.ErrInvalidArgument, chat.ErrChatClient, true},
		{"ErrAuth wraps ErrHTTP", chat.ErrAuth, chat.ErrHTTP, true},
		{"ErrAuth wraps ErrChatClient", chat.ErrAuth, chat.ErrChatClient, true},
		{"ErrTimeout wraps ErrTransport", chat.ErrTimeout, chat.ErrTransport, true},
		{"ErrInvalidResponse wraps ErrChatClient", chat.ErrInvalidResponse, chat.ErrChatClient, true},
		{"ErrHTTP does not wrap ErrTransport", chat.ErrHTTP, chat.ErrTransport, false},
		{"ErrTransport does not wrap ErrTimeout", chat.ErrTransport, chat.ErrTimeout, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := errors.Is(tc.err, tc.target); got != tc.match {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tc.err, tc.target, got, tc.match)
			}
		})
	}
}

func TestHTTPError(t *testing.T) {
	err := &chat.HTTPError{StatusCode: 401, Status: "Unauthorized", Body: "invalid api key"}

	if !errors.Is(err, chat.ErrAuth) {
		t.Error("401 should match ErrAuth")
	}
	if !errors.Is(err, chat.ErrHTTP) {
		t.Error("401 should match ErrHTTP")
	}
	if got := err.Error(); !strings.Contains(got, "401") || !strings.Contains(got, "invalid api key") {
		t.Errorf("Error() = %q", got)
	}

	server := &chat.HTTPError{StatusCode: 500, Status: "Internal Server Error"}
	if errors.Is(server, chat.ErrAuth) {
		t.Error("500 should not match ErrAuth")
	}
	if !errors.Is(server, chat.ErrHTTP) {
		t.Error("500 should match ErrHTTP")
	}
}

func TestTransportError(t *testing.T) {
	timeout := &chat.TransportError{Timeout: true, Err: context.DeadlineExceeded}
	if !errors.Is(timeout, chat.ErrTimeout) || !errors.Is(timeout, chat.ErrTransport) {
		t.Error("timeout should match ErrTimeout and ErrTransport")
	}
	if !errors.Is(timeout, context.DeadlineExceeded) {
		t.Error("timeout should expose the cause")
	}

	refused := &chat.TransportError{Err: errors.New("connection refused")}
	if errors.Is(refused, chat.ErrTimeout) {
		t.Error("non-timeout should not match ErrTimeout")
	}
	if !errors.Is(refused, chat.ErrTransport) {
		t.Error("should match ErrTransport")
	}

	var extracted *chat.TransportError
	if !errors.As(error(refused), &extracted) {
		t.Fatal("errors.As should extract TransportError")
	}
}
