// Copyright (c) Enigmastation. All rights reserved.

package chat

import "time"

// Usage holds token consumption statistics reported by the provider.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Choice is one candidate completion returned for a request.
type Choice struct {
	Message      Message
	Index        int
	FinishReason string
}

// ChatResponse is a successfully parsed chat completion.
type ChatResponse struct {
	ID      string
	Object  string
	Model   string
	Created time.Time
	Choices []Choice
	Usage   Usage
}

// First returns the content of the first choice. The boolean is false when
// the response carries no choices.
func (r *ChatResponse) First() (string, bool) {
	if r == nil || len(r.Choices) == 0 {
		return "", false
	}
	return r.Choices[0].Message.Content, true
}

// Conversation converts the returned choices into a [Conversation] on the
// response's model, so they can be threaded back into a follow-up request.
func (r *ChatResponse) Conversation() Conversation {
	conv := NewConversation()
	if r == nil {
		return conv
	}
	if r.Model != "" {
		conv.Model = r.Model
	}
	for _, c := range r.Choices {
		conv.Messages = append(conv.Messages, c.Message)
	}
	return conv
}

// ResultKind discriminates the variants of a [Result].
type ResultKind uint8

const (
	// KindEmpty marks a result produced without contacting the provider
	// because no credential (or no usable endpoint) was configured.
	KindEmpty ResultKind = iota
	// KindSuccess marks a result carrying a parsed [ChatResponse].
	KindSuccess
)

func (k ResultKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSuccess:
		return "success"
	}
	return "unknown"
}

// Result is the outcome of a send: either empty or a successful response.
// The zero value is an empty result.
type Result struct {
	kind     ResultKind
	response *ChatResponse
}

// Empty returns the empty [Result].
func Empty() Result { return Result{} }

// Success wraps resp in a [Result]. A nil resp yields an empty result.
func Success(resp *ChatResponse) Result {
	if resp == nil {
		return Result{}
	}
	return Result{kind: KindSuccess, response: resp}
}

// Kind reports which variant r holds.
func (r Result) Kind() ResultKind { return r.kind }

// IsEmpty reports whether r is the empty variant.
func (r Result) IsEmpty() bool { return r.kind == KindEmpty }

// Response returns the parsed response for a success result.
func (r Result) Response() (*ChatResponse, bool) {
	return r.response, r.kind == KindSuccess
}

// First returns the content of the first choice of a success result.
// Empty results, and responses without choices, report false.
func (r Result) First() (string, bool) {
	if r.kind != KindSuccess {
		return "", false
	}
	return r.response.First()
}
