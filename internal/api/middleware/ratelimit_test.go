package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func hit(handler http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/ask", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	// a refill rate of 1/min is negligible within the test's runtime
	rl := NewRateLimiter(1, 3, zap.NewNop())
	handler := rl.Handler(okHandler())

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, hit(handler, "10.0.0.1:1234", ""), "request %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "10.0.0.1:1234", ""))
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, 1, zap.NewNop())
	handler := rl.Handler(okHandler())

	require.Equal(t, http.StatusOK, hit(handler, "10.0.0.1:1234", ""))
	require.Equal(t, http.StatusTooManyRequests, hit(handler, "10.0.0.1:1234", ""))

	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.2:1234", ""))
}

func TestRateLimiter_UsesForwardedForFirstHop(t *testing.T) {
	rl := NewRateLimiter(1, 1, zap.NewNop())
	handler := rl.Handler(okHandler())

	require.Equal(t, http.StatusOK, hit(handler, "10.0.0.1:1234", "203.0.113.7, 10.0.0.1"))
	// same origin client through a different proxy port is still limited
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "10.0.0.1:5678", "203.0.113.7, 10.0.0.9"))
}

func TestClientAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:9999"
	assert.Equal(t, "192.0.2.1", clientAddr(req))

	req.Header.Set("X-Forwarded-For", " 203.0.113.7 , 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientAddr(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.8")
	assert.Equal(t, "203.0.113.8", clientAddr(req))
}
