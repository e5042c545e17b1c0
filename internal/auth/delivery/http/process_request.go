package http

import (
	"github.com/gin-gonic/gin"
)

// processRequestOTPReq binds and validates the OTP request body.
func (h *handler) processRequestOTPReq(c *gin.Context) (requestOTPReq, error) {
	var req requestOTPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processVerifyOTPReq binds and validates the OTP verification body.
func (h *handler) processVerifyOTPReq(c *gin.Context) (verifyOTPReq, error) {
	var req verifyOTPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
