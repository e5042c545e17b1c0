package usecase

import (
	"context"
	"strings"

	"voltassist/internal/chat"
	"voltassist/internal/model"
)

const (
	titleMaxLen   = 50
	contextWindow = 5
	defaultTitle  = "New Chat"
)

func (uc *implUsecase) CreateConversation(ctx context.Context, sc model.Scope, input chat.CreateConversationInput) (model.Conversation, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = defaultTitle
	}

	conv, err := uc.convRepo.CreateConversation(ctx, model.Conversation{
		UserMobile: sc.Mobile,
		Title:      title,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.CreateConversation: %v", err)
		return model.Conversation{}, err
	}
	return conv, nil
}

func (uc *implUsecase) ListConversations(ctx context.Context, sc model.Scope) ([]model.Conversation, error) {
	convs, err := uc.convRepo.ListConversations(ctx, sc.Mobile)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ListConversations: %v", err)
		return nil, err
	}
	return convs, nil
}

func (uc *implUsecase) ListMessages(ctx context.Context, sc model.Scope, conversationID string) ([]model.Message, error) {
	if _, err := uc.ownedConversation(ctx, sc, conversationID); err != nil {
		return nil, err
	}

	msgs, err := uc.convRepo.ListMessages(ctx, conversationID)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ListMessages: %v", err)
		return nil, err
	}
	return msgs, nil
}

func (uc *implUsecase) SendMessage(ctx context.Context, sc model.Scope, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return chat.SendMessageOutput{}, chat.ErrEmptyMessage
	}

	conv, err := uc.ownedConversation(ctx, sc, input.ConversationID)
	if err != nil {
		return chat.SendMessageOutput{}, err
	}

	// Prior messages feed the AI fallback as conversation context. Losing
	// them only costs context, not the reply.
	contextText := ""
	if history, err := uc.convRepo.ListMessages(ctx, conv.ID); err == nil {
		contextText = buildContext(history)
	} else {
		uc.l.Warnf(ctx, "chat.usecase.SendMessage: load history: %v", err)
	}

	userMsg, err := uc.convRepo.InsertMessage(ctx, model.Message{
		ConversationID: conv.ID,
		MessageType:    model.MessageTypeUser,
		Content:        content,
		FileURLs:       input.FileURLs,
		FileNames:      input.FileNames,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.SendMessage: insert user message: %v", err)
		return chat.SendMessageOutput{}, err
	}

	reply := uc.generateResponse(ctx, content, sc.Mobile, contextText)

	assistantMsg, err := uc.convRepo.InsertMessage(ctx, model.Message{
		ConversationID: conv.ID,
		MessageType:    model.MessageTypeAssistant,
		Content:        reply,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.SendMessage: insert assistant message: %v", err)
		return chat.SendMessageOutput{}, err
	}

	if err := uc.convRepo.TouchConversation(ctx, conv.ID, titleFromContent(content)); err != nil {
		uc.l.Warnf(ctx, "chat.usecase.SendMessage: touch conversation: %v", err)
	}

	return chat.SendMessageOutput{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
	}, nil
}

// ownedConversation loads a conversation and checks it belongs to the caller.
func (uc *implUsecase) ownedConversation(ctx context.Context, sc model.Scope, id string) (model.Conversation, error) {
	if id == "" {
		return model.Conversation{}, chat.ErrConversationNotFound
	}

	conv, err := uc.convRepo.GetConversation(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ownedConversation: %v", err)
		return model.Conversation{}, err
	}
	if conv.ID == "" || conv.UserMobile != sc.Mobile {
		return model.Conversation{}, chat.ErrConversationNotFound
	}
	return conv, nil
}

// titleFromContent truncates the latest user message into a thread title.
func titleFromContent(content string) string {
	runes := []rune(content)
	if len(runes) <= titleMaxLen {
		return content
	}
	return string(runes[:titleMaxLen]) + "..."
}

// buildContext joins the most recent messages into plain text for the AI call.
func buildContext(history []model.Message) string {
	if len(history) > contextWindow {
		history = history[len(history)-contextWindow:]
	}

	var b strings.Builder
	for _, m := range history {
		b.WriteString(string(m.MessageType))
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
