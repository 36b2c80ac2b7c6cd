// Copyright (c) Enigmastation. All rights reserved.

package chat

import "context"

// Handler is the function signature for sending a conversation.
type Handler func(ctx context.Context, conv Conversation) (Result, error)

// Middleware wraps a [Handler] to add cross-cutting behavior.
// Middleware should call next to continue the chain, or return early to short-circuit.
type Middleware func(next Handler) Handler

// Chain applies middleware in order (first in list = outermost wrapper).
func Chain(handler Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}
