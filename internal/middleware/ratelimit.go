package middleware

import (
	"net/http"
	"sync"
	"time"

	"flotagest/internal/apierror"

	"github.com/gin-gonic/gin"
)

type rateEntry struct {
	count     int
	windowEnd time.Time
}

// RateLimiter is a sliding-window per-IP limiter. Entries whose window has
// expired are purged lazily on the next request from that IP; the map is
// additionally swept when it grows past sweepThreshold.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	const sweepThreshold = 4096

	var (
		mu      sync.Mutex
		entries = make(map[string]*rateEntry)
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		if len(entries) > sweepThreshold {
			for k, e := range entries {
				if now.After(e.windowEnd) {
					delete(entries, k)
				}
			}
		}
		entry, ok := entries[ip]
		if !ok || now.After(entry.windowEnd) {
			entry = &rateEntry{windowEnd: now.Add(window)}
			entries[ip] = entry
		}
		entry.count++
		over := entry.count > limit
		retryAfter := entry.windowEnd
		mu.Unlock()

		if over {
			c.Header("Retry-After", retryAfter.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}
