package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message content is empty")
)
