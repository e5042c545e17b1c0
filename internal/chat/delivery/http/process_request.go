package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateConversationReq binds the create conversation body.
func (h *handler) processCreateConversationReq(c *gin.Context) (createConversationReq, error) {
	var req createConversationReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, nil
}

// processSendMessageReq binds the message body and URI param.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ConversationID = c.Param("id")
	return req, nil
}
