package model

import "time"

// MessageType distinguishes who authored a chat message.
type MessageType string

const (
	MessageTypeUser      MessageType = "user"
	MessageTypeAssistant MessageType = "assistant"
)

// Conversation is one chat thread belonging to a mobile number.
type Conversation struct {
	ID         string
	UserMobile string
	Title      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Message is a single chat message. File URLs point at externally stored
// attachments; this service persists the references only.
type Message struct {
	ID             string
	ConversationID string
	MessageType    MessageType
	Content        string
	FileURLs       []string
	FileNames      []string
	CreatedAt      time.Time
}
