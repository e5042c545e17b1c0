package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voltassist/internal/auth"
	authHTTP "voltassist/internal/auth/delivery/http"
	authRedis "voltassist/internal/auth/repository/redis"
	authUC "voltassist/internal/auth/usecase"
	"voltassist/internal/middleware"
	"voltassist/pkg/sms"
)

// buildAuthUsecase wires the auth usecase. It is built before the other
// domains because the auth middleware depends on it.
func (srv *HTTPServer) buildAuthUsecase() auth.UseCase {
	repo := authRedis.New(srv.redisClient, srv.l)
	sender := sms.NewLogSender(srv.l)

	return authUC.New(srv.l, repo, sender, authUC.Config{
		OTPTTL:      srv.appCfg.Auth.OTPTTL,
		SessionTTL:  srv.appCfg.Auth.SessionTTL,
		MockOTPCode: srv.appCfg.Auth.MockOTPCode,
	})
}

// setupAuthDomain registers the auth routes.
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, uc auth.UseCase, mw middleware.Middleware) {
	h := authHTTP.New(srv.l, uc)
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
}
