package http

import (
	"time"

	"pharmacy-ops/internal/schedule"
	"pharmacy-ops/pkg/civil"
)

type checklistItemResp struct {
	TaskID         string  `json:"task_id"`
	Title          string  `json:"title"`
	Timing         string  `json:"timing"`
	AppearanceDate string  `json:"appearance_date"`
	DueDate        string  `json:"due_date"`
	DueTime        string  `json:"due_time"`
	LockAt         *string `json:"lock_at,omitempty"`
	Status         string  `json:"status"`
}

type checklistResp struct {
	Date  string              `json:"date"`
	Items []checklistItemResp `json:"items"`
}

func newChecklistResp(out schedule.DayChecklistOutput) checklistResp {
	items := make([]checklistItemResp, 0, len(out.Items))
	for _, item := range out.Items {
		r := checklistItemResp{
			TaskID:         item.TaskID,
			Title:          item.Title,
			Timing:         string(item.Timing),
			AppearanceDate: item.Occurrence.AppearanceDate.String(),
			DueDate:        item.Occurrence.DueDate.String(),
			DueTime:        item.Occurrence.DueTime.String(),
			Status:         string(item.Status),
		}
		if item.Occurrence.LockAt != nil {
			s := item.Occurrence.LockAt.Format(time.RFC3339)
			r.LockAt = &s
		}
		items = append(items, r)
	}
	return checklistResp{Date: out.Date.String(), Items: items}
}

type materializeReq struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

func (r materializeReq) toInput() (schedule.MaterializeInput, error) {
	from, err := civil.ParseDate(r.From)
	if err != nil {
		return schedule.MaterializeInput{}, err
	}
	to, err := civil.ParseDate(r.To)
	if err != nil {
		return schedule.MaterializeInput{}, err
	}
	return schedule.MaterializeInput{From: from, To: to}, nil
}

type materializeResp struct {
	Days      int `json:"days"`
	Evaluated int `json:"evaluated"`
	Created   int `json:"created"`
}

type refreshResp struct {
	Scanned int `json:"scanned"`
	Changed int `json:"changed"`
}

type completionReq struct {
	TaskID string `json:"task_id" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

func (r completionReq) toInput() (schedule.CompletionInput, error) {
	date, err := civil.ParseDate(r.Date)
	if err != nil {
		return schedule.CompletionInput{}, err
	}
	return schedule.CompletionInput{TaskID: r.TaskID, Date: date}, nil
}
