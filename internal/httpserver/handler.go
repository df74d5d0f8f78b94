package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kiki830621/che-things-mcp/internal/middleware"
	thingsHTTP "github.com/kiki830621/che-things-mcp/internal/things/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimitPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.RateLimit())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	h := thingsHTTP.New(srv.l, srv.thingsUC)
	thingsHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Things tool routes registered under /api/v1/tools")
}
