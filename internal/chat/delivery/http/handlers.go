package http

import (
	"github.com/gin-gonic/gin"

	"voltassist/internal/middleware"
	"voltassist/pkg/response"
)

// CreateConversation godoc
// @Summary     Start a conversation
// @Description Creates a new chat thread for the logged-in customer.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createConversationReq false "Optional title"
// @Success     200 {object} conversationResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/conversations [POST]
func (h *handler) CreateConversation(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateConversationReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	conv, err := h.uc.CreateConversation(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateConversation: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newConversationResp(conv))
}

// ListConversations godoc
// @Summary     List conversations
// @Description Returns the customer's chat threads, most recently updated first.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listConversationsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/conversations [GET]
func (h *handler) ListConversations(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	convs, err := h.uc.ListConversations(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListConversations: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListConversationsResp(convs))
}

// ListMessages godoc
// @Summary     List messages
// @Description Returns a conversation's messages, oldest first.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Conversation ID"
// @Success     200 {object} listMessagesResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/conversations/{id}/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	msgs, err := h.uc.ListMessages(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMessages: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListMessagesResp(msgs))
}

// SendMessage godoc
// @Summary     Send a message
// @Description Sends a customer message and returns it together with the assistant reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string         true "Conversation ID"
// @Param       body body sendMessageReq true "Message content"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/conversations/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SendMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendMessageResp(out))
}
