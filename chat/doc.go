// Copyright (c) Enigmastation. All rights reserved.

// Package chat provides the provider-neutral types used by the kgpt chat
// client: messages and roles, immutable conversations, the [Result] union
// returned by a send, and the error taxonomy shared by provider packages.
//
// # Messages
//
// Raw strings are user messages. Use the role helpers to tag text explicitly:
//
//	conv := chat.NewConversation(
//	    chat.NewSystemMessage("Use only latin names for species"),
//	    chat.NewUserMessage("What is the airspeed of a laden swallow?"),
//	)
//
// [Normalize] converts the loosely typed inputs accepted by a client's Send
// method (strings, messages, and one level of nested slices) into an
// ordered []Message.
//
// # Results
//
// A send yields a [Result] that is either empty (no credential configured,
// the network was never touched) or carries a [ChatResponse]:
//
//	switch res.Kind() {
//	case chat.KindEmpty:
//	    // unauthenticated
//	case chat.KindSuccess:
//	    resp, _ := res.Response()
//	    fmt.Println(resp.Usage.TotalTokens)
//	}
//
// # Errors
//
// Failures wrap the sentinels in this package and can be inspected with
// errors.Is and errors.As:
//
//	var httpErr *chat.HTTPError
//	if errors.As(err, &httpErr) {
//	    log.Printf("status %d: %s", httpErr.StatusCode, httpErr.Body)
//	}
package chat
