package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	visitors map[string]*Visitor
	mutex    sync.RWMutex
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*Visitor),
	}
	go rl.cleanupVisitors()
	return rl
}

// limitsFor picks limits per route. Provisioning is an operator
// action with expensive side effects; activation is a webhook target
// and gets a higher burst.
func limitsFor(path string) (rate.Limit, int) {
	switch path {
	case "/v1/accounts/provision":
		return rate.Every(1 * time.Minute), 3
	case "/v1/subscriptions/activate":
		return rate.Every(1 * time.Second), 30
	default:
		return rate.Every(1 * time.Second), 20
	}
}

func (rl *RateLimiter) getVisitor(key string, limit rate.Limit, burst int) *rate.Limiter {
	rl.mutex.RLock()
	v, exists := rl.visitors[key]
	rl.mutex.RUnlock()

	if exists {
		rl.mutex.Lock()
		v.lastSeen = time.Now()
		rl.mutex.Unlock()
		return v.limiter
	}

	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	if v, exists := rl.visitors[key]; exists {
		v.lastSeen = time.Now()
		return v.limiter
	}
	limiter := rate.NewLimiter(limit, burst)
	rl.visitors[key] = &Visitor{
		limiter:  limiter,
		lastSeen: time.Now(),
	}
	return limiter
}

func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			limit, burst := limitsFor(path)
			key := c.RealIP() + ":" + path

			limiter := rl.getVisitor(key, limit, burst)
			if !limiter.Allow() {
				retryAfter := getRetryAfter(limiter)
				c.Response().Header().Set("Retry-After", retryAfter)
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"error":       "too many requests",
					"code":        "RATE_LIMIT_EXCEEDED",
					"retry_after": retryAfter,
				})
			}
			return next(c)
		}
	}
}

func getRetryAfter(limiter *rate.Limiter) string {
	reservation := limiter.Reserve()
	delay := reservation.Delay()
	reservation.Cancel()
	seconds := int(delay.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}

// cleanupVisitors drops entries idle for more than three minutes.
func (rl *RateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		for key, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mutex.Unlock()
	}
}
