package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/surawits/vibeLink/internal/handlers"
	"github.com/surawits/vibeLink/internal/middleware"
)

// RegisterRedirectRoutes registers the public redirector at the root.
func RegisterRedirectRoutes(r *gin.Engine) {
	r.GET("/:code", middleware.RateLimitMiddleware(middleware.RedirectLimiter), handlers.ResolveShortCode)
}
