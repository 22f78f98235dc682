package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/cwsbrian/mone-mori-app/internal/core/ports/services"
	"github.com/cwsbrian/mone-mori-app/internal/middleware"
	"github.com/cwsbrian/mone-mori-app/internal/platform/config"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerHomeRoutes(r)
	registerAuthRoutes(r, services.Auth)

	// Everything under /api/v1 outside auth requires a bearer token.
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	registerUserRoutes(v1, services.User)
	registerSpaceRoutes(v1, services)
}
