package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// uploadAttempt tracks upload attempts from an IP
type uploadAttempt struct {
	Count    int
	FirstAt  time.Time
	LockedAt time.Time
	IsLocked bool
}

// RateLimiter manages rate limiting for upload attempts
type RateLimiter struct {
	mu           sync.RWMutex
	attempts     map[string]*uploadAttempt
	maxAttempts  int
	windowPeriod time.Duration
	lockDuration time.Duration
}

// NewRateLimiter creates a new rate limiter
// maxAttempts: maximum attempts allowed within the window
// windowPeriod: time window for counting attempts
// lockDuration: how long to lock the IP after max attempts exceeded
func NewRateLimiter(maxAttempts int, windowPeriod, lockDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		attempts:     make(map[string]*uploadAttempt),
		maxAttempts:  maxAttempts,
		windowPeriod: windowPeriod,
		lockDuration: lockDuration,
	}
}

// StartCleanup launches a goroutine that periodically removes stale entries
func (rl *RateLimiter) StartCleanup() {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		for range ticker.C {
			rl.cleanup()
		}
	}()
}

// cleanup removes expired entries
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for ip, attempt := range rl.attempts {
		// Remove if lock has expired and window has passed
		if attempt.IsLocked {
			if now.Sub(attempt.LockedAt) > rl.lockDuration {
				delete(rl.attempts, ip)
			}
		} else if now.Sub(attempt.FirstAt) > rl.windowPeriod {
			delete(rl.attempts, ip)
		}
	}
}

// Check checks if an IP is allowed to upload
func (rl *RateLimiter) Check(ip string) (bool, int, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	attempt, exists := rl.attempts[ip]

	if !exists {
		return true, rl.maxAttempts, 0
	}

	// Check if locked
	if attempt.IsLocked {
		remaining := rl.lockDuration - now.Sub(attempt.LockedAt)
		if remaining > 0 {
			return false, 0, remaining
		}
		// Lock expired, reset
		delete(rl.attempts, ip)
		return true, rl.maxAttempts, 0
	}

	// Check if window expired
	if now.Sub(attempt.FirstAt) > rl.windowPeriod {
		delete(rl.attempts, ip)
		return true, rl.maxAttempts, 0
	}

	attemptsRemaining := rl.maxAttempts - attempt.Count
	if attemptsRemaining <= 0 {
		return false, 0, rl.windowPeriod - now.Sub(attempt.FirstAt)
	}

	return true, attemptsRemaining, 0
}

// RecordAttempt records an upload attempt for an IP
func (rl *RateLimiter) RecordAttempt(ip string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	attempt, exists := rl.attempts[ip]

	if !exists {
		rl.attempts[ip] = &uploadAttempt{
			Count:   1,
			FirstAt: now,
		}
		return
	}

	// Check if window expired
	if now.Sub(attempt.FirstAt) > rl.windowPeriod {
		rl.attempts[ip] = &uploadAttempt{
			Count:   1,
			FirstAt: now,
		}
		return
	}

	attempt.Count++

	// Check if should lock
	if attempt.Count >= rl.maxAttempts {
		attempt.IsLocked = true
		attempt.LockedAt = now
	}
}

// Middleware returns a handler that rejects rate-limited uploads
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		allowed, remaining, lockDuration := rl.Check(ip)

		// Set headers for client awareness
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(lockDuration.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"detail": fmt.Sprintf("Too many uploads. Try again in %d seconds", int(lockDuration.Seconds())),
			})
			c.Abort()
			return
		}

		rl.RecordAttempt(ip)
		c.Next()
	}
}
