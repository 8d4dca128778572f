package http

import (
	"insurance-renewal-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Confirm stands in for the gateway webhook and is authorized by a
// shared secret inside the use case, not by middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	payments := rg.Group("/payment")
	{
		payments.POST("/process", mw.RateLimit(), h.Process)
		payments.GET("/status/:id", h.Status)
		payments.POST("/confirm", h.Confirm)
	}
}
