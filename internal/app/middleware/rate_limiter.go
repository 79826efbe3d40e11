package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ritikkamerkar15/residential-security-system/internal/error/code"
	"github.com/ritikkamerkar15/residential-security-system/internal/error/response"
)

// TokenBucket is a simple per-key rate limiter
type TokenBucket struct {
	rate       float64 // tokens refilled per second
	capacity   int
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a bucket that starts full
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow takes one token if available
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

var (
	keyLimiters   = make(map[string]*TokenBucket)
	keyLimitersMu sync.RWMutex
)

func getLimiter(key string, rate float64, burst int) *TokenBucket {
	keyLimitersMu.RLock()
	limiter, exists := keyLimiters[key]
	keyLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(rate, burst)
		keyLimitersMu.Lock()
		keyLimiters[key] = limiter
		keyLimitersMu.Unlock()
	}
	return limiter
}

// IPRateLimiter limits each client address to rate requests per second with
// the given burst allowance
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getLimiter(c.ClientIP(), rate, burst)
		if !limiter.Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "too many requests, slow down", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginRateLimiter keys on IP plus path so a flood of login attempts cannot
// starve the rest of the API for that address
func LoginRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getLimiter(c.ClientIP()+":"+c.Request.URL.Path, rate, burst)
		if !limiter.Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "too many attempts, try again later", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func init() {
	// Drop idle limiters periodically so the map does not grow without bound
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			keyLimitersMu.Lock()
			for key, limiter := range keyLimiters {
				limiter.mu.Lock()
				idle := time.Since(limiter.lastRefill) > time.Hour
				limiter.mu.Unlock()
				if idle {
					delete(keyLimiters, key)
				}
			}
			keyLimitersMu.Unlock()
		}
	}()
}
