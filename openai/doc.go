// Copyright (c) Enigmastation. All rights reserved.

// Package openai provides a chat client for OpenAI-compatible Chat
// Completions endpoints.
//
// Create a client and send one or more messages:
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"))
//
//	res, err := client.Send(ctx,
//	    "What is the airspeed of a laden swallow?",
//	    chat.NewSystemMessage("Use only latin names for species"),
//	)
//	if err != nil {
//	    return err
//	}
//	if text, ok := res.First(); ok {
//	    fmt.Println(text)
//	}
//
// A client built without a credential never touches the network: every
// send returns an empty [chat.Result].
//
// # Configuration
//
// Use functional options to configure the client:
//
//   - [WithEndpoint]: override the chat completions URL (e.g., a gateway)
//   - [WithConnectTimeout], [WithReadTimeout]: bound each call; the total
//     call timeout is their sum
//   - [WithModel], [WithTemperature]: defaults applied by [Client.Send]
//   - [WithTokenCredential]: authenticate with Azure AD tokens
//   - [WithHTTPClient]: provide a custom http.Client
//   - [WithHeaders]: add custom headers to every request
//   - [WithMiddleware]: wrap every send with [chat.Middleware]
//
// # Testing
//
// The client uses an unexported transport interface internally.
// For testing, provide a mock http.Client via [WithHTTPClient]
// with a custom RoundTripper, or point [WithEndpoint] at an httptest server.
package openai
