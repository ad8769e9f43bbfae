package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Orekusandoru/online-store/config"
)

// ipRateLimiter keeps one token bucket per client IP.
type ipRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

func newIPRateLimiter(r rate.Limit, b int) *ipRateLimiter {
	return &ipRateLimiter{
		ips: make(map[string]*rate.Limiter),
		r:   r,
		b:   b,
	}
}

func (l *ipRateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.ips[ip]; ok {
		return lim
	}
	lim := rate.NewLimiter(l.r, l.b)
	l.ips[ip] = lim
	return lim
}

// cleanup drops all buckets periodically so the map does not grow without
// bound. Dropped IPs simply start with a full bucket again.
func (l *ipRateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		l.ips = make(map[string]*rate.Limiter)
		l.mu.Unlock()
	}
}

// RateLimit applies a blanket per-IP request cap at the edge.
func RateLimit(cfg *config.RateLimit) gin.HandlerFunc {
	limiter := newIPRateLimiter(rate.Limit(cfg.RPS), cfg.Burst)
	go limiter.cleanup(time.Hour)

	return func(c *gin.Context) {
		if !limiter.limiter(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
