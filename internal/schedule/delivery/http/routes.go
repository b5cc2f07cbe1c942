package http

import (
	"github.com/gin-gonic/gin"

	"pharmacy-ops/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The job
// trigger routes are rate-limited: they fan out over (tasks x dates) and a
// runaway caller must not be able to stack passes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	checklist := rg.Group("/checklist")
	{
		checklist.GET("/:date", h.DayChecklist)
	}

	instances := rg.Group("/instances")
	{
		instances.POST("/complete", h.Complete)
		instances.POST("/revert", h.Revert)
	}

	jobs := rg.Group("/jobs")
	{
		jobs.POST("/materialize", mw.RateLimit(), h.Materialize)
		jobs.POST("/status-refresh", mw.RateLimit(), h.RefreshStatuses)
	}

	rg.GET("/dashboard/:date", h.Dashboard)
}
