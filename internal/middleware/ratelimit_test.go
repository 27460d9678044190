package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"proxy-jobs-export/internal/middleware"
	"proxy-jobs-export/pkg/log"
)

func newRouter(t *testing.T, perMin int, trustedProxies []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		t.Fatalf("SetTrustedProxies: %v", err)
	}
	mw := middleware.New(log.NewNop(), perMin)
	r.POST("/build", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func post(r http.Handler, remoteIP, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/build", nil)
	req.RemoteAddr = remoteIP + ":40000"
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("Burst Then Reject", func(t *testing.T) {
		// 10 per minute gives a burst of 1.
		r := newRouter(t, 10, nil)

		if code := post(r, "1.2.3.4", ""); code != http.StatusOK {
			t.Fatalf("first request: expected 200, got %d", code)
		}
		if code := post(r, "1.2.3.4", ""); code != http.StatusTooManyRequests {
			t.Fatalf("second request: expected 429, got %d", code)
		}
		if code := post(r, "5.6.7.8", ""); code != http.StatusOK {
			t.Fatalf("other client: expected 200, got %d", code)
		}
	})

	t.Run("Untrusted Forwarded For Is Ignored", func(t *testing.T) {
		r := newRouter(t, 10, nil)

		if code := post(r, "1.2.3.4", "9.9.9.1"); code != http.StatusOK {
			t.Fatalf("first request: expected 200, got %d", code)
		}
		if code := post(r, "1.2.3.4", "9.9.9.2"); code != http.StatusTooManyRequests {
			t.Fatalf("spoofed header: expected 429, got %d", code)
		}
	})

	t.Run("Trusted Proxy Forwarded For", func(t *testing.T) {
		r := newRouter(t, 10, []string{"10.0.0.1"})

		if code := post(r, "10.0.0.1", "1.2.3.4"); code != http.StatusOK {
			t.Fatalf("first client: expected 200, got %d", code)
		}
		if code := post(r, "10.0.0.1", "5.6.7.8"); code != http.StatusOK {
			t.Fatalf("second client behind proxy: expected 200, got %d", code)
		}
		if code := post(r, "10.0.0.1", "1.2.3.4"); code != http.StatusTooManyRequests {
			t.Fatalf("repeat client: expected 429, got %d", code)
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		r := newRouter(t, 0, nil)
		for i := 0; i < 20; i++ {
			if code := post(r, "1.2.3.4", ""); code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, code)
			}
		}
	})
}
