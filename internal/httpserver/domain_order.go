package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voltassist/internal/middleware"
	orderHTTP "voltassist/internal/order/delivery/http"
	orderPostgre "voltassist/internal/order/repository/postgre"
	orderUC "voltassist/internal/order/usecase"
)

// setupOrderDomain initializes the order domain and registers its routes.
func (srv *HTTPServer) setupOrderDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := orderPostgre.New(srv.postgresDB, srv.l)
	uc := orderUC.New(srv.l, repo)
	h := orderHTTP.New(srv.l, uc)

	orderHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Order domain registered")
}
