package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"pharmacy-ops/internal/middleware"
	scheduleHTTP "pharmacy-ops/internal/schedule/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.rateLimitPerMin)
	api := srv.gin.Group("/api/v1")

	scheduleHTTP.RegisterRoutes(api, srv.scheduleHandler, mw)
	srv.l.Infof(ctx, "Schedule domain registered under /api/v1")
}
