package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/nqkhanh/commune-backend/internal/pkg/response"
)

const msgRateLimited = "Bạn đang gửi câu hỏi quá nhanh. Vui lòng thử lại sau."

// clientBucket tracks token bucket state for a single client
type clientBucket struct {
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// RateLimiter implements per-client token bucket rate limiting. Buckets
// live in a TTL cache so inactive clients expire on their own.
type RateLimiter struct {
	buckets    *gocache.Cache
	mu         sync.Mutex
	maxTokens  float64 // burst size
	refillRate float64 // tokens added per second
	logger     *zap.Logger
}

// NewRateLimiter creates a rate limiter allowing requestsPerMinute with
// bursts of burstSize.
func NewRateLimiter(requestsPerMinute, burstSize int, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		buckets:    gocache.New(10*time.Minute, 15*time.Minute),
		maxTokens:  float64(burstSize),
		refillRate: float64(requestsPerMinute) / 60.0,
		logger:     logger,
	}
}

// Handler is the chi-compatible middleware wrapper.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientAddr(r)

		if !rl.allowRequest(client) {
			rl.logger.Warn("rate limit exceeded",
				zap.String("client", client),
				zap.String("path", r.URL.Path),
			)
			response.Error(w, http.StatusTooManyRequests, msgRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allowRequest(client string) bool {
	rl.mu.Lock()
	var bucket *clientBucket
	if cached, found := rl.buckets.Get(client); found {
		bucket = cached.(*clientBucket)
	} else {
		bucket = &clientBucket{
			tokens:     rl.maxTokens,
			lastRefill: time.Now(),
		}
		rl.buckets.SetDefault(client, bucket)
	}
	rl.mu.Unlock()

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	now := time.Now()

	// Refill tokens based on elapsed time
	elapsed := now.Sub(bucket.lastRefill).Seconds()
	bucket.tokens += elapsed * rl.refillRate
	if bucket.tokens > rl.maxTokens {
		bucket.tokens = rl.maxTokens
	}
	bucket.lastRefill = now

	if bucket.tokens >= 1.0 {
		bucket.tokens -= 1.0
		return true
	}

	return false
}

// clientAddr identifies the client: first X-Forwarded-For hop when behind
// a proxy, otherwise the remote address without the port.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, found := strings.Cut(fwd, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
