package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/lazybook/pkg/response"
)

// idleEvictAfter bounds the per-IP registry: entries idle this long are
// swept, so a scan over spoofed addresses cannot grow memory forever.
const idleEvictAfter = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitorRegistry struct {
	mu        sync.Mutex
	rps       rate.Limit
	burst     int
	visitors  map[string]*visitor
	lastSweep time.Time
}

func newVisitorRegistry(rps float64, burst int) *visitorRegistry {
	return &visitorRegistry{
		rps:       rate.Limit(rps),
		burst:     burst,
		visitors:  make(map[string]*visitor),
		lastSweep: time.Now(),
	}
}

func (r *visitorRegistry) allow(ip string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if now.Sub(r.lastSweep) > idleEvictAfter {
		for k, v := range r.visitors {
			if now.Sub(v.lastSeen) > idleEvictAfter {
				delete(r.visitors, k)
			}
		}
		r.lastSweep = now
	}
	v, ok := r.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(r.rps, r.burst)}
		r.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.Allow()
}

func (r *visitorRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

// RateLimit applies a token-bucket limit per client IP. Used on the auth
// routes to slow down credential guessing.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	reg := newVisitorRegistry(rps, burst)
	return func(c *gin.Context) {
		if !reg.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Response{
				Code: http.StatusTooManyRequests,
				Msg:  "too many requests",
			})
			return
		}
		c.Next()
	}
}
