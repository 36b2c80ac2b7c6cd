// Copyright (c) Enigmastation. All rights reserved.

package openai

import "github.com/enigmastation/kgpt/chat"

// chatRequest is the Chat Completions API request body.
type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

// buildRequest converts a conversation into an API request.
func buildRequest(conv chat.Conversation) *chatRequest {
	return &chatRequest{
		Messages:    convertMessages(conv.Messages),
		Model:       conv.Model,
		Temperature: conv.Temperature,
	}
}

// convertMessages translates messages into wire messages. A message without
// a role is sent as a user message.
func convertMessages(messages []chat.Message) []chatMessage {
	result := make([]chatMessage, 0, len(messages))
	for _, msg := range messages {
		role := msg.Role
		if role == "" {
			role = chat.RoleUser
		}
		result = append(result, chatMessage{
			Content: msg.Content,
			Role:    string(role),
		})
	}
	return result
}
