package http

import (
	"github.com/gin-gonic/gin"

	"voltassist/internal/middleware"
	"voltassist/pkg/response"
)

// ListMyOrders godoc
// @Summary     List my orders
// @Description Returns the logged-in customer's orders, newest first.
// @Tags        Orders
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listOrdersResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/orders [GET]
func (h *handler) ListMyOrders(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	orders, err := h.uc.ListMyOrders(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMyOrders: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListOrdersResp(orders))
}
