package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 3)
	h := rl.Limit(http.HandlerFunc(okHandler))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestRateLimiter_BlocksOverBurst(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 2)
	h := rl.Limit(http.HandlerFunc(okHandler))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_PerIPIsolation(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)
	h := rl.Limit(http.HandlerFunc(okHandler))

	first := httptest.NewRequest(http.MethodPost, "/", nil)
	first.RemoteAddr = "10.0.0.3:1234"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, first)
	assert.Equal(t, http.StatusOK, rr.Code)

	// A different client still has a full bucket.
	second := httptest.NewRequest(http.MethodPost, "/", nil)
	second.RemoteAddr = "10.0.0.4:1234"
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, second)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRealIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.5:1234"
	assert.Equal(t, "10.0.0.5", realIP(req))

	req.Header.Set("X-Real-Ip", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", realIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.7, 203.0.113.9")
	assert.Equal(t, "198.51.100.7", realIP(req))
}
