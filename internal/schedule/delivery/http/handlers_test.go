package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"pharmacy-ops/internal/dashboard"
	"pharmacy-ops/internal/middleware"
	"pharmacy-ops/internal/model"
	"pharmacy-ops/internal/schedule"
	"pharmacy-ops/pkg/civil"
	"pharmacy-ops/pkg/datemath"
	"pharmacy-ops/pkg/response"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeUseCase is a schedule.UseCase with overridable behavior per method.
type fakeUseCase struct {
	dayChecklist func(ctx context.Context, input schedule.DayChecklistInput) (schedule.DayChecklistOutput, error)
	materialize  func(ctx context.Context, input schedule.MaterializeInput) (schedule.MaterializeOutput, error)
	refresh      func(ctx context.Context) (schedule.RefreshStatusesOutput, error)
	complete     func(ctx context.Context, input schedule.CompletionInput) error
	revert       func(ctx context.Context, input schedule.CompletionInput) error
}

func (f *fakeUseCase) DayChecklist(ctx context.Context, input schedule.DayChecklistInput) (schedule.DayChecklistOutput, error) {
	return f.dayChecklist(ctx, input)
}

func (f *fakeUseCase) Materialize(ctx context.Context, input schedule.MaterializeInput) (schedule.MaterializeOutput, error) {
	return f.materialize(ctx, input)
}

func (f *fakeUseCase) RefreshStatuses(ctx context.Context) (schedule.RefreshStatusesOutput, error) {
	return f.refresh(ctx)
}

func (f *fakeUseCase) Complete(ctx context.Context, input schedule.CompletionInput) error {
	return f.complete(ctx, input)
}

func (f *fakeUseCase) Revert(ctx context.Context, input schedule.CompletionInput) error {
	return f.revert(ctx, input)
}

type fakeKPIs struct {
	snapshot func(ctx context.Context, date civil.Date) (dashboard.Snapshot, error)
}

func (f *fakeKPIs) Snapshot(ctx context.Context, date civil.Date) (dashboard.Snapshot, error) {
	return f.snapshot(ctx, date)
}

func newTestRouter(uc schedule.UseCase, kpis dashboard.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := &mockLogger{}

	clock := civil.FixedClock{Instant: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)}
	h := New(l, uc, kpis, datemath.NewParser(clock))

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), h, middleware.New(l, 60))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDayChecklistHandler(t *testing.T) {
	lockAt := time.Date(2026, 8, 22, 23, 59, 0, 0, time.UTC)
	uc := &fakeUseCase{
		dayChecklist: func(ctx context.Context, input schedule.DayChecklistInput) (schedule.DayChecklistOutput, error) {
			return schedule.DayChecklistOutput{
				Date: input.Date,
				Items: []schedule.ChecklistItem{{
					TaskID: "fridge",
					Title:  "Record fridge temperatures",
					Timing: model.TimingOpening,
					Occurrence: model.Occurrence{
						TaskID:         "fridge",
						AppearanceDate: input.Date,
						DueDate:        input.Date,
						DueTime:        civil.TimeOfDay{Hour: 9, Minute: 30},
						LockAt:         &lockAt,
					},
					Status: model.StatusOverdue,
				}},
			}, nil
		},
	}
	router := newTestRouter(uc, &fakeKPIs{})

	t.Run("Explicit Date", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/checklist/2026-08-20", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data checklistResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Data.Date != "2026-08-20" || len(resp.Data.Items) != 1 {
			t.Fatalf("data = %+v", resp.Data)
		}
		item := resp.Data.Items[0]
		if item.TaskID != "fridge" || item.DueTime != "09:30" || item.Status != "overdue" || item.LockAt == nil {
			t.Errorf("item = %+v", item)
		}
	})

	t.Run("Relative Date Resolves Against Clock", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/checklist/today", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var resp struct {
			Data checklistResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Data.Date != "2026-08-20" {
			t.Errorf("date = %s, want the fixed clock's today", resp.Data.Date)
		}
	})

	t.Run("Bad Date", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/checklist/whenever", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestCompletionHandlers(t *testing.T) {
	var gotComplete, gotRevert schedule.CompletionInput
	uc := &fakeUseCase{
		complete: func(ctx context.Context, input schedule.CompletionInput) error {
			gotComplete = input
			return nil
		},
		revert: func(ctx context.Context, input schedule.CompletionInput) error {
			gotRevert = input
			return nil
		},
	}
	router := newTestRouter(uc, &fakeKPIs{})

	t.Run("Complete", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/instances/complete",
			map[string]string{"task_id": "fridge", "date": "2026-08-20"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if gotComplete.TaskID != "fridge" || !gotComplete.Date.Equal(civil.MustParseDate("2026-08-20")) {
			t.Errorf("input = %+v", gotComplete)
		}
	})

	t.Run("Revert", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/instances/revert",
			map[string]string{"task_id": "fridge", "date": "2026-08-20"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if gotRevert.TaskID != "fridge" {
			t.Errorf("input = %+v", gotRevert)
		}
	})

	t.Run("Missing Fields", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/instances/complete",
			map[string]string{"task_id": "fridge"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Locked Instance Surfaces Its Error", func(t *testing.T) {
		locked := &fakeUseCase{
			complete: func(ctx context.Context, input schedule.CompletionInput) error {
				return schedule.ErrInstanceLocked
			},
		}
		w := doJSON(t, newTestRouter(locked, &fakeKPIs{}), http.MethodPost, "/api/v1/instances/complete",
			map[string]string{"task_id": "fridge", "date": "2026-08-17"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Message != schedule.ErrInstanceLocked.Error() {
			t.Errorf("message = %q", resp.Message)
		}
	})
}

func TestJobHandlers(t *testing.T) {
	uc := &fakeUseCase{
		materialize: func(ctx context.Context, input schedule.MaterializeInput) (schedule.MaterializeOutput, error) {
			return schedule.MaterializeOutput{Days: 6, Evaluated: 18, Created: 7}, nil
		},
		refresh: func(ctx context.Context) (schedule.RefreshStatusesOutput, error) {
			return schedule.RefreshStatusesOutput{Scanned: 5, Changed: 4}, nil
		},
	}
	router := newTestRouter(uc, &fakeKPIs{})

	t.Run("Materialize", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/jobs/materialize",
			map[string]string{"from": "2026-08-17", "to": "2026-08-22"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var resp struct {
			Data materializeResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Data.Created != 7 || resp.Data.Days != 6 {
			t.Errorf("data = %+v", resp.Data)
		}
	})

	t.Run("Status Refresh", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/jobs/status-refresh", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var resp struct {
			Data refreshResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Data.Scanned != 5 || resp.Data.Changed != 4 {
			t.Errorf("data = %+v", resp.Data)
		}
	})

	t.Run("Internal Errors Are Masked", func(t *testing.T) {
		failing := &fakeUseCase{
			materialize: func(ctx context.Context, input schedule.MaterializeInput) (schedule.MaterializeOutput, error) {
				return schedule.MaterializeOutput{}, context.DeadlineExceeded
			},
		}
		w := doJSON(t, newTestRouter(failing, &fakeKPIs{}), http.MethodPost, "/api/v1/jobs/materialize",
			map[string]string{"from": "2026-08-17", "to": "2026-08-22"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Message != "internal error" {
			t.Errorf("message = %q, internal detail must not leak", resp.Message)
		}
	})
}

func TestDashboardHandler(t *testing.T) {
	kpis := &fakeKPIs{
		snapshot: func(ctx context.Context, date civil.Date) (dashboard.Snapshot, error) {
			return dashboard.Snapshot{Date: date, Total: 6, Done: 2, CompletionRate: 1.0 / 3.0}, nil
		},
	}
	router := newTestRouter(&fakeUseCase{}, kpis)

	w := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/2026-08-20", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Data dashboard.Snapshot `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Total != 6 || resp.Data.Done != 2 {
		t.Errorf("data = %+v", resp.Data)
	}
}
