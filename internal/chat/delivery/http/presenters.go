package http

import (
	"time"

	"voltassist/internal/chat"
	"voltassist/internal/model"
)

// --- Request DTOs ---

type createConversationReq struct {
	Title string `json:"title" binding:"max=255"`
}

func (r createConversationReq) toInput() chat.CreateConversationInput {
	return chat.CreateConversationInput{Title: r.Title}
}

type sendMessageReq struct {
	ConversationID string   `json:"-"` // populated from URI param
	Content        string   `json:"content"    binding:"required,max=4000"`
	FileURLs       []string `json:"file_urls"  binding:"omitempty,max=5"`
	FileNames      []string `json:"file_names" binding:"omitempty,max=5"`
}

func (r sendMessageReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		ConversationID: r.ConversationID,
		Content:        r.Content,
		FileURLs:       r.FileURLs,
		FileNames:      r.FileNames,
	}
}

// --- Response DTOs ---

type conversationResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newConversationResp(conv model.Conversation) conversationResp {
	return conversationResp{
		ID:        conv.ID,
		Title:     conv.Title,
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
	}
}

type listConversationsResp struct {
	Conversations []conversationResp `json:"conversations"`
}

func (h *handler) newListConversationsResp(convs []model.Conversation) listConversationsResp {
	out := make([]conversationResp, len(convs))
	for i, conv := range convs {
		out[i] = newConversationResp(conv)
	}
	return listConversationsResp{Conversations: out}
}

type messageResp struct {
	ID          string    `json:"id"`
	MessageType string    `json:"message_type"`
	Content     string    `json:"content"`
	FileURLs    []string  `json:"file_urls,omitempty"`
	FileNames   []string  `json:"file_names,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:          m.ID,
		MessageType: string(m.MessageType),
		Content:     m.Content,
		FileURLs:    m.FileURLs,
		FileNames:   m.FileNames,
		CreatedAt:   m.CreatedAt,
	}
}

type listMessagesResp struct {
	Messages []messageResp `json:"messages"`
}

func (h *handler) newListMessagesResp(msgs []model.Message) listMessagesResp {
	out := make([]messageResp, len(msgs))
	for i, m := range msgs {
		out[i] = newMessageResp(m)
	}
	return listMessagesResp{Messages: out}
}

type sendMessageResp struct {
	UserMessage      messageResp `json:"user_message"`
	AssistantMessage messageResp `json:"assistant_message"`
}

func (h *handler) newSendMessageResp(out chat.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		UserMessage:      newMessageResp(out.UserMessage),
		AssistantMessage: newMessageResp(out.AssistantMessage),
	}
}
