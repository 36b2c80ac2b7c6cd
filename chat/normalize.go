// Copyright (c) Enigmastation. All rights reserved.

package chat

// maxNesting is how many slice levels a single argument may contain.
const maxNesting = 2

// Normalize converts flexible input forms into an ordered []Message.
//
// Each input may be a string (becomes a user message), a [Message], a
// non-nil *Message, or a slice ([]Message, []string or []any). A []any may
// itself hold strings, messages and slices of those, which are flattened in
// order; deeper nesting is rejected. A message whose role is set but is not
// one of system, user or assistant is rejected; an empty role is sent as
// user. Any rejected value yields an [*ArgumentError] wrapping
// [ErrInvalidArgument], as does an empty input.
func Normalize(inputs ...any) ([]Message, error) {
	if len(inputs) == 0 {
		return nil, &ArgumentError{Index: -1, Reason: "no messages"}
	}

	msgs := make([]Message, 0, len(inputs))
	for i, input := range inputs {
		var err error
		msgs, err = appendInput(msgs, input, i, maxNesting)
		if err != nil {
			return nil, err
		}
	}
	return msgs, nil
}

// appendInput appends v to msgs, descending into at most depth slice levels.
func appendInput(msgs []Message, v any, index, depth int) ([]Message, error) {
	if m, ok := toMessage(v); ok {
		if err := checkRole(m, index); err != nil {
			return nil, err
		}
		return append(msgs, m), nil
	}

	if depth > 0 {
		switch s := v.(type) {
		case []Message:
			for _, m := range s {
				if err := checkRole(m, index); err != nil {
					return nil, err
				}
			}
			return append(msgs, s...), nil
		case []string:
			for _, text := range s {
				msgs = append(msgs, NewUserMessage(text))
			}
			return msgs, nil
		case []any:
			for _, elem := range s {
				var err error
				msgs, err = appendInput(msgs, elem, index, depth-1)
				if err != nil {
					return nil, err
				}
			}
			return msgs, nil
		}
	}

	reason := "unsupported message value"
	if depth < maxNesting {
		reason = "unsupported element in message list"
	}
	return nil, &ArgumentError{Value: v, Index: index, Reason: reason}
}

func checkRole(m Message, index int) error {
	if m.Role != "" && !m.Role.Valid() {
		return &ArgumentError{Value: m, Index: index, Reason: "unsupported role"}
	}
	return nil
}

func toMessage(v any) (Message, bool) {
	switch m := v.(type) {
	case string:
		return NewUserMessage(m), true
	case Message:
		return m, true
	case *Message:
		if m == nil {
			return Message{}, false
		}
		return *m, true
	}
	return Message{}, false
}
