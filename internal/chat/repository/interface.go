package repository

import (
	"context"

	"voltassist/internal/model"
)

// FAQRepository loads the FAQ catalogue used for matching.
type FAQRepository interface {
	// ListFAQs returns all entries ordered by creation time ascending.
	ListFAQs(ctx context.Context) ([]model.FAQ, error)
}

// ConversationRepository persists chat threads and their messages.
type ConversationRepository interface {
	// CreateConversation inserts a new thread and returns it with its ID set.
	CreateConversation(ctx context.Context, conv model.Conversation) (model.Conversation, error)

	// GetConversation returns a thread by ID, or a zero-value Conversation
	// (ID == "") when absent.
	GetConversation(ctx context.Context, id string) (model.Conversation, error)

	// ListConversations returns a mobile number's threads, most recently
	// updated first.
	ListConversations(ctx context.Context, mobile string) ([]model.Conversation, error)

	// ListMessages returns a thread's messages, oldest first.
	ListMessages(ctx context.Context, conversationID string) ([]model.Message, error)

	// InsertMessage appends a message and returns it with its ID set.
	InsertMessage(ctx context.Context, msg model.Message) (model.Message, error)

	// TouchConversation updates a thread's title and bumps its updated_at.
	TouchConversation(ctx context.Context, id, title string) error
}
