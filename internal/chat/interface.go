package chat

import (
	"context"

	"voltassist/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// CreateConversation starts a new chat thread for the caller.
	CreateConversation(ctx context.Context, sc model.Scope, input CreateConversationInput) (model.Conversation, error)

	// ListConversations returns the caller's threads, most recently updated first.
	ListConversations(ctx context.Context, sc model.Scope) ([]model.Conversation, error)

	// ListMessages returns a conversation's messages, oldest first.
	ListMessages(ctx context.Context, sc model.Scope, conversationID string) ([]model.Message, error)

	// SendMessage persists the user message, generates the assistant reply,
	// persists it, and refreshes the conversation title and timestamp.
	SendMessage(ctx context.Context, sc model.Scope, input SendMessageInput) (SendMessageOutput, error)
}
