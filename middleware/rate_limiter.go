package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/samenwerkt-wbd/members-backend/models"
	"github.com/samenwerkt-wbd/members-backend/utils"
)

// RateLimiter implements a simple in-memory sliding-window rate limiter
// keyed by client IP. It protects the public form endpoints against
// scripted submission floods.
type RateLimiter struct {
	requests map[string][]time.Time
	mutex    sync.Mutex
	maxReqs  int
	window   time.Duration
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		maxReqs:  maxRequests,
		window:   window,
	}
}

// IsAllowed checks if a request from the given IP is allowed
func (rl *RateLimiter) IsAllowed(clientIP string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()

	var valid []time.Time
	for _, reqTime := range rl.requests[clientIP] {
		if now.Sub(reqTime) < rl.window {
			valid = append(valid, reqTime)
		}
	}

	if len(valid) >= rl.maxReqs {
		slog.Warn("Rate limit exceeded", "ip", clientIP, "requests", len(valid), "limit", rl.maxReqs)
		rl.requests[clientIP] = valid
		return false
	}

	rl.requests[clientIP] = append(valid, now)
	return true
}

// Middleware applies the limiter to a handler chain.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.IsAllowed(getClientIP(r)) {
			utils.RespondWithJSON(w, http.StatusTooManyRequests, models.ErrorResponse{
				Success: false,
				Message: "Te veel verzoeken. Probeer het later opnieuw.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
