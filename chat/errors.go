// Copyright (c) Enigmastation. All rights reserved.

package chat

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrChatClient is the base error for chat client failures.
	ErrChatClient = errors.New("chat client error")

	// ErrInvalidArgument indicates a message value of an unsupported shape.
	// It is raised before any network I/O.
	ErrInvalidArgument = fmt.Errorf("%w: invalid argument", ErrChatClient)

	// ErrHTTP indicates the provider answered with a non-success status.
	ErrHTTP = fmt.Errorf("%w: http status", ErrChatClient)

	// ErrAuth indicates the provider rejected the credential (401 or 403).
	ErrAuth = fmt.Errorf("%w: authentication", ErrHTTP)

	// ErrTransport indicates the request never produced an HTTP response.
	ErrTransport = fmt.Errorf("%w: transport", ErrChatClient)

	// ErrTimeout indicates a connect, read or total-call deadline expired.
	ErrTimeout = fmt.Errorf("%w: timeout", ErrTransport)

	// ErrInvalidResponse indicates a success status with an undecodable body.
	ErrInvalidResponse = fmt.Errorf("%w: invalid response", ErrChatClient)
)

// ArgumentError reports an input value that cannot be converted to a
// [Message]. Index is the position of the offending argument, or -1 when
// the failure is not tied to one argument.
type ArgumentError struct {
	Value  any
	Index  int
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid argument: %s", e.Reason)
	}
	return fmt.Sprintf("invalid argument %d: %s: %#v (%T)", e.Index, e.Reason, e.Value, e.Value)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// HTTPError carries a non-success response from the provider. Body holds
// the raw response body verbatim; Message is the provider's error message
// when the body used the OpenAI error envelope.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
	Message    string
}

func (e *HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Body
	}
	if msg == "" {
		return fmt.Sprintf("http %d %s", e.StatusCode, e.Status)
	}
	return fmt.Sprintf("http %d %s: %s", e.StatusCode, e.Status, msg)
}

func (e *HTTPError) Unwrap() error {
	if e.StatusCode == 401 || e.StatusCode == 403 {
		return ErrAuth
	}
	return ErrHTTP
}

// TransportError wraps a low-level failure that prevented a response from
// being received.
type TransportError struct {
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("transport timeout: %v", e.Err)
	}
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() []error {
	if e.Timeout {
		return []error{ErrTimeout, e.Err}
	}
	return []error{ErrTransport, e.Err}
}
