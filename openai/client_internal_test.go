// Copyright (c) Enigmastation. All rights reserved.

package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/enigmastation/kgpt/chat"
)

type recordingTransport struct {
	calls  int
	bodies []any
	reply  []byte
	err    error
}

func (r *recordingTransport) post(ctx context.Context, body any) ([]byte, error) {
	r.calls++
	r.bodies = append(r.bodies, body)
	return r.reply, r.err
}

func TestSend_NoCredentialSkipsTransport(t *testing.T) {
	tp := &recordingTransport{}
	c := newWithTransport(tp, false)

	for _, in := range [][]any{{"hi"}, {chat.NewUserMessage("hi")}, {[]any{"a", 1}}, {struct{}{}}} {
		res, err := c.Send(context.Background(), in...)
		if err != nil || !res.IsEmpty() {
			t.Errorf("Send(%v) = %v, %v", in, res.Kind(), err)
		}
	}
	if tp.calls != 0 {
		t.Errorf("transport calls = %d", tp.calls)
	}
}

func TestSend_BuildsRequestFromDefaults(t *testing.T) {
	tp := &recordingTransport{reply: []byte(`{"id":"x","choices":[]}`)}
	c := newWithTransport(tp, true)

	res, err := c.Send(context.Background(), "hi", chat.NewSystemMessage("sys"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Kind() != chat.KindSuccess {
		t.Fatalf("kind = %v", res.Kind())
	}
	if tp.calls != 1 {
		t.Fatalf("calls = %d", tp.calls)
	}

	b, err := json.Marshal(tp.bodies[0])
	if err != nil {
		t.Fatal(err)
	}
	want := `{"messages":[{"content":"hi","role":"user"},{"content":"sys","role":"system"}],"model":"gpt-4","temperature":0.7}`
	if string(b) != want {
		t.Errorf("body = %s\nwant   %s", b, want)
	}
}

func TestParseChatResponse(t *testing.T) {
	raw, err := unmarshalChatResponse([]byte(`{
		"id": "chatcmpl-9",
		"object": "chat.completion",
		"created": 1677652288,
		"model": "gpt-4-0613",
		"choices": [
			{"index": 0, "message": {"role": "assistant", "content": "Hirundo rustica"}, "finish_reason": "stop"},
			{"index": 1, "message": {"content": "second"}, "finish_reason": "length"}
		],
		"usage": {"prompt_tokens": 9, "completion_tokens": 12, "total_tokens": 21}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	resp := parseChatResponse(raw)

	if resp.ID != "chatcmpl-9" || resp.Model != "gpt-4-0613" || resp.Object != "chat.completion" {
		t.Errorf("header fields = %+v", resp)
	}
	if resp.Created.Unix() != 1677652288 {
		t.Errorf("Created = %v", resp.Created)
	}
	if len(resp.Choices) != 2 {
		t.Fatalf("choices = %d", len(resp.Choices))
	}
	if resp.Choices[1].Message.Role != chat.RoleAssistant {
		t.Errorf("default role = %q", resp.Choices[1].Message.Role)
	}
	if resp.Choices[1].FinishReason != "length" || resp.Choices[1].Index != 1 {
		t.Errorf("choice[1] = %+v", resp.Choices[1])
	}
	if resp.Usage.TotalTokens != 21 {
		t.Errorf("Usage = %+v", resp.Usage)
	}
}

func TestValidEndpoint(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{DefaultEndpoint, true},
		{"http://localhost:8080/v1/chat/completions", true},
		{"https://gw.example.com/openai/deployments/x/chat/completions?api-version=2024-06-01", true},
		{"", false},
		{"localhost:8080", false},
		{"ftp://example.com", false},
		{"https://", false},
		{"::", false},
	}
	for _, tc := range tests {
		if got := validEndpoint(tc.url); got != tc.want {
			t.Errorf("validEndpoint(%q) = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestNewHTTPClientTimeouts(t *testing.T) {
	c := newHTTPClient(DefaultConnectTimeout, DefaultReadTimeout)
	if c.Timeout != DefaultConnectTimeout+DefaultReadTimeout {
		t.Errorf("Timeout = %v", c.Timeout)
	}
	tr, ok := c.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("transport = %T", c.Transport)
	}
	if tr.ResponseHeaderTimeout != DefaultReadTimeout {
		t.Errorf("ResponseHeaderTimeout = %v", tr.ResponseHeaderTimeout)
	}
	if tr.TLSHandshakeTimeout != DefaultConnectTimeout {
		t.Errorf("TLSHandshakeTimeout = %v", tr.TLSHandshakeTimeout)
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		status string
		code   int
		want   string
	}{
		{"401 Unauthorized", 401, "Unauthorized"},
		{"418 I'm a teapot", 418, "I'm a teapot"},
		{"", 503, "Service Unavailable"},
		{"429", 429, "Too Many Requests"},
	}
	for _, tc := range tests {
		got := statusText(&http.Response{Status: tc.status, StatusCode: tc.code})
		if got != tc.want {
			t.Errorf("statusText(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
