package chat

import "voltassist/internal/model"

// CreateConversationInput is the input for starting a thread.
type CreateConversationInput struct {
	Title string
}

// SendMessageInput is the input for sending a chat message.
type SendMessageInput struct {
	ConversationID string
	Content        string
	FileURLs       []string
	FileNames      []string
}

// SendMessageOutput carries both sides of the exchange.
type SendMessageOutput struct {
	UserMessage      model.Message
	AssistantMessage model.Message
}
