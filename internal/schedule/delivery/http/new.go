package http

import (
	"github.com/gin-gonic/gin"

	"pharmacy-ops/internal/dashboard"
	"pharmacy-ops/internal/schedule"
	"pharmacy-ops/pkg/datemath"
	"pharmacy-ops/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	DayChecklist(c *gin.Context)
	Materialize(c *gin.Context)
	RefreshStatuses(c *gin.Context)
	Complete(c *gin.Context)
	Revert(c *gin.Context)
	Dashboard(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    schedule.UseCase
	kpis  dashboard.UseCase
	dates *datemath.Parser
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase, kpis dashboard.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		kpis:  kpis,
		dates: dates,
	}
}
