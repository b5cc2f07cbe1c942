package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
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

func newLimitedRouter(perMinute int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, perMinute)

	router := gin.New()
	router.POST("/job", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func hit(router *gin.Engine) int {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/job", nil))
	return w.Code
}

func TestRateLimit(t *testing.T) {
	// Burst of one: the first request passes, the immediate second is shed.
	router := newLimitedRouter(1)

	if code := hit(router); code != http.StatusOK {
		t.Fatalf("first request = %d, want 200", code)
	}
	if code := hit(router); code != http.StatusTooManyRequests {
		t.Errorf("second request = %d, want 429", code)
	}
}

func TestRateLimitDefaultBudget(t *testing.T) {
	// Non-positive config falls back to the default budget; a single request
	// must pass.
	router := newLimitedRouter(0)
	if code := hit(router); code != http.StatusOK {
		t.Errorf("request = %d, want 200", code)
	}
}
