package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"DeviceDB/internal/models"

	"golang.org/x/time/rate"
)

// visitorLimiter caps requests per origin over a long window, e.g. 10
// requests every 24 hours. Limiter state is in-memory and per process.
type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newVisitorLimiter(window time.Duration, maxRequests int) *visitorLimiter {
	return &visitorLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(maxRequests)),
		burst:    maxRequests,
	}
}

func (v *visitorLimiter) allow(origin string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	limiter, ok := v.visitors[origin]
	if !ok {
		limiter = rate.NewLimiter(v.limit, v.burst)
		v.visitors[origin] = limiter
	}
	return limiter.Allow()
}

func (v *visitorLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !v.allow(clientIP(r)) {
			writeJSON(w, http.StatusTooManyRequests, models.ErrorResponse{
				Status:  "error",
				Message: "Free plan limit reached. Please upgrade.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP prefers the first X-Forwarded-For hop so the limit keys on the
// real origin behind a proxy, falling back to the socket address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i > 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
