package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"pharmacy-ops/internal/schedule"
	"pharmacy-ops/pkg/response"
)

// DayChecklist returns the live task list for one civil date.
// The :date path parameter takes a 2006-01-02 date or a relative expression
// ("today", "tomorrow", "next monday") resolved against the service clock.
func (h *handler) DayChecklist(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.dates.Parse(c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.DayChecklist(ctx, schedule.DayChecklistInput{Date: date})
	if err != nil {
		h.l.Errorf(ctx, "uc.DayChecklist: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newChecklistResp(out))
}

// Materialize runs the instance-materializer job over a date range.
func (h *handler) Materialize(c *gin.Context) {
	ctx := c.Request.Context()

	var req materializeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Materialize(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Materialize: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, materializeResp{Days: out.Days, Evaluated: out.Evaluated, Created: out.Created})
}

// RefreshStatuses runs the status-refresh job over open instances.
func (h *handler) RefreshStatuses(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.RefreshStatuses(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.RefreshStatuses: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, refreshResp{Scanned: out.Scanned, Changed: out.Changed})
}

// Complete marks a task instance done.
func (h *handler) Complete(c *gin.Context) {
	h.completion(c, h.uc.Complete)
}

// Revert undoes a completion.
func (h *handler) Revert(c *gin.Context) {
	h.completion(c, h.uc.Revert)
}

func (h *handler) completion(c *gin.Context, op func(ctx context.Context, input schedule.CompletionInput) error) {
	ctx := c.Request.Context()

	var req completionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := op(ctx, input); err != nil {
		h.l.Errorf(ctx, "completion %s@%s: %v", input.TaskID, input.Date, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Dashboard returns the per-day completion KPI snapshot.
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.dates.Parse(c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	snap, err := h.kpis.Snapshot(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "kpis.Snapshot: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, snap)
}
