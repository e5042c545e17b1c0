package http

import (
	"voltassist/internal/chat"
	"voltassist/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	CreateConversation(c interface{})
	ListConversations(c interface{})
	ListMessages(c interface{})
	SendMessage(c interface{})
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
