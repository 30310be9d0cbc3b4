package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"quartz/internal/middleware"
	"quartz/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func TestIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, middleware.Config{})

	var got model.Scope
	r := gin.New()
	r.GET("/", mw.Identity(), func(c *gin.Context) {
		got = middleware.ScopeFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "alice")
	req.Header.Set("X-Username", "Alice")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if got.UserID != "alice" || got.Username != "Alice" {
		t.Errorf("scope = %+v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	if got.UserID != "local" {
		t.Errorf("default scope user = %q, want local", got.UserID)
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, middleware.Config{RateLimitRPS: 1, RateLimitBurst: 2})

	r := gin.New()
	r.GET("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("within burst: codes = %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("over burst: code = %d, want 429", codes[2])
	}
}
