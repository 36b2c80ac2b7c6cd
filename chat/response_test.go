// Copyright (c) Enigmastation. All rights reserved.

package chat_test

import (
	"testing"

	"github.com/enigmastation/kgpt/chat"
)

func TestResult_ZeroValueIsEmpty(t *testing.T) {
	var r chat.Result
	if !r.IsEmpty() || r.Kind() != chat.KindEmpty {
		t.Errorf("zero Result kind = %v", r.Kind())
	}
	if _, ok := r.Response(); ok {
		t.Error("empty result should have no response")
	}
	if _, ok := r.First(); ok {
		t.Error("empty result First should report absence")
	}
	if r != chat.Empty() {
		t.Error("Empty() should equal the zero value")
	}
}

func TestResult_Success(t *testing.T) {
	resp := &chat.ChatResponse{
		ID: "chatcmpl-1",
		Choices: []chat.Choice{
			{Message: chat.NewAssistantMessage("hello"), FinishReason: "stop"},
			{Message: chat.NewAssistantMessage("other"), Index: 1},
		},
	}
	r := chat.Success(resp)
	if r.Kind() != chat.KindSuccess || r.IsEmpty() {
		t.Fatalf("kind = %v", r.Kind())
	}
	got, ok := r.Response()
	if !ok || got != resp {
		t.Fatal("Response should return the wrapped response")
	}
	if text, ok := r.First(); !ok || text != "hello" {
		t.Errorf("First = %q, %v", text, ok)
	}
}

func TestResult_SuccessNilIsEmpty(t *testing.T) {
	if !chat.Success(nil).IsEmpty() {
		t.Error("Success(nil) should be empty")
	}
}

func TestChatResponse_FirstWithoutChoices(t *testing.T) {
	resp := &chat.ChatResponse{ID: "x"}
	if text, ok := resp.First(); ok || text != "" {
		t.Errorf("First = %q, %v; want absence", text, ok)
	}
	if _, ok := chat.Success(resp).First(); ok {
		t.Error("success without choices should report absence")
	}
}

func TestChatResponse_Conversation(t *testing.T) {
	resp := &chat.ChatResponse{
		Model: "gpt-4o",
		Choices: []chat.Choice{
			{Message: chat.NewAssistantMessage("a")},
			{Message: chat.NewAssistantMessage("b"), Index: 1},
		},
	}
	conv := resp.Conversation()
	if conv.Model != "gpt-4o" {
		t.Errorf("Model = %q", conv.Model)
	}
	if conv.Temperature != chat.DefaultTemperature {
		t.Errorf("Temperature = %v", conv.Temperature)
	}
	if conv.Len() != 2 || conv.Messages[1].Content != "b" {
		t.Errorf("messages = %+v", conv.Messages)
	}

	next := conv.WithText("continue")
	if next.Messages[2].Role != chat.RoleUser {
		t.Errorf("appended role = %q", next.Messages[2].Role)
	}
}

func TestResultKindString(t *testing.T) {
	if chat.KindEmpty.String() != "empty" || chat.KindSuccess.String() != "success" {
		t.Errorf("got %q, %q", chat.KindEmpty, chat.KindSuccess)
	}
}
