package http

import (
	"github.com/gin-gonic/gin"

	"voltassist/pkg/response"
)

// RequestOTP godoc
// @Summary     Request a login code
// @Description Sends a one-time login code to the given mobile number.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body requestOTPReq true "Mobile number"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid mobile number"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/otp [POST]
func (h *handler) RequestOTP(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRequestOTPReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.RequestOTP(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.RequestOTP: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// VerifyOTP godoc
// @Summary     Verify a login code
// @Description Exchanges a valid one-time code for a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body verifyOTPReq true "Mobile number and code"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Invalid mobile number"
// @Failure     401 {object} response.Resp "Invalid or expired code"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/verify [POST]
func (h *handler) VerifyOTP(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVerifyOTPReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sess, err := h.uc.VerifyOTP(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.VerifyOTP: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(sess))
}
