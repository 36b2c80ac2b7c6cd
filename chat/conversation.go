// Copyright (c) Enigmastation. All rights reserved.

package chat

// Defaults applied by [NewConversation].
const (
	DefaultModel       = "gpt-4"
	DefaultTemperature = 0.7
)

// Conversation is one outbound chat request: an ordered list of messages
// plus the sampling parameters sent with it.
//
// A Conversation is a value. The builder methods return a copy and never
// modify the receiver, so a conversation handed to a client can keep being
// extended by the caller without affecting the request in flight.
type Conversation struct {
	Messages    []Message
	Model       string
	Temperature float64
}

// NewConversation creates a [Conversation] with the default model and
// temperature.
func NewConversation(msgs ...Message) Conversation {
	return Conversation{
		Messages:    cloneMessages(msgs, 0),
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
	}
}

// With returns a copy of c with msg appended.
func (c Conversation) With(msg Message) Conversation {
	c.Messages = append(cloneMessages(c.Messages, 1), msg)
	return c
}

// WithText returns a copy of c with text appended as a user message.
func (c Conversation) WithText(text string) Conversation {
	return c.With(NewUserMessage(text))
}

// WithModel returns a copy of c that targets model.
func (c Conversation) WithModel(model string) Conversation {
	c.Messages = cloneMessages(c.Messages, 0)
	c.Model = model
	return c
}

// WithTemperature returns a copy of c with the given sampling temperature.
func (c Conversation) WithTemperature(t float64) Conversation {
	c.Messages = cloneMessages(c.Messages, 0)
	c.Temperature = t
	return c
}

// Len returns the number of messages in c.
func (c Conversation) Len() int { return len(c.Messages) }

// Validate reports an [*ArgumentError] when c has no messages or a message
// carries a role other than system, user or assistant.
func (c Conversation) Validate() error {
	if len(c.Messages) == 0 {
		return &ArgumentError{Index: -1, Reason: "no messages"}
	}
	for i, m := range c.Messages {
		if err := checkRole(m, i); err != nil {
			return err
		}
	}
	return nil
}

func cloneMessages(msgs []Message, extra int) []Message {
	out := make([]Message, len(msgs), len(msgs)+extra)
	copy(out, msgs)
	return out
}
