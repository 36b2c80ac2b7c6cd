// Copyright (c) Enigmastation. All rights reserved.

package openai

import (
	"encoding/json"
	"time"

	"github.com/enigmastation/kgpt/chat"
)

// chatCompletionResponse is the Chat Completions API response.
// Fields not listed here are ignored.
type chatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
	Usage   *usage   `json:"usage,omitempty"`
}

type choice struct {
	Index        int         `json:"index"`
	Message      respMessage `json:"message"`
	FinishReason *string     `json:"finish_reason"`
}

type respMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// unmarshalChatResponse parses the JSON response body.
func unmarshalChatResponse(data []byte) (*chatCompletionResponse, error) {
	var resp chatCompletionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// parseChatResponse converts the API response into chat types.
// Absent fields take zero values; a choice without a role is an assistant turn.
func parseChatResponse(raw *chatCompletionResponse) *chat.ChatResponse {
	resp := &chat.ChatResponse{
		ID:     raw.ID,
		Object: raw.Object,
		Model:  raw.Model,
	}
	if raw.Created > 0 {
		resp.Created = time.Unix(raw.Created, 0).UTC()
	}

	if raw.Usage != nil {
		resp.Usage = chat.Usage{
			PromptTokens:     raw.Usage.PromptTokens,
			CompletionTokens: raw.Usage.CompletionTokens,
			TotalTokens:      raw.Usage.TotalTokens,
		}
	}

	resp.Choices = make([]chat.Choice, 0, len(raw.Choices))
	for _, c := range raw.Choices {
		msg := chat.Message{Role: chat.Role(c.Message.Role)}
		if msg.Role == "" {
			msg.Role = chat.RoleAssistant
		}
		if c.Message.Content != nil {
			msg.Content = *c.Message.Content
		}
		ch := chat.Choice{Message: msg, Index: c.Index}
		if c.FinishReason != nil {
			ch.FinishReason = *c.FinishReason
		}
		resp.Choices = append(resp.Choices, ch)
	}

	return resp
}
