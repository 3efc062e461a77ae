package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-manager/config"
	"catalog-manager/pkg/log"
)

func newEngine(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.POST("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("Blocks After Burst", func(t *testing.T) {
		mw := New(log.NewNop(), config.RateLimitConfig{Enabled: true, RequestsPerMin: 10, MaxSources: 10, SourceRetention: time.Minute})
		r := newEngine(mw)

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
			codes = append(codes, w.Code)
		}
		// burst is max(1, 10/10) = 1
		if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
			t.Errorf("unexpected status sequence %v", codes)
		}
	})

	t.Run("Disabled Passes Through", func(t *testing.T) {
		mw := New(log.NewNop(), config.RateLimitConfig{Enabled: false})
		r := newEngine(mw)
		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})
}

func TestRateLimiterPerSource(t *testing.T) {
	rl := newRateLimiter(10, 10, time.Minute)
	if err := rl.Allow("a"); err != nil {
		t.Fatalf("first request from a: %v", err)
	}
	if err := rl.Allow("a"); err == nil {
		t.Errorf("expected a to be limited")
	}
	if err := rl.Allow("b"); err != nil {
		t.Errorf("b should have its own bucket: %v", err)
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(New(log.NewNop(), config.RateLimitConfig{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Errorf("expected a generated request id")
	}

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("expected echoed request id, got %q", got)
	}
}

func TestRateLimiterConcurrentFirstRequests(t *testing.T) {
	// burst 1 and a rate slow enough that no token refills during the test
	rl := newRateLimiter(1, 10, time.Minute)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("same-ip") == nil {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("expected exactly 1 request allowed, got %d", got)
	}
}
