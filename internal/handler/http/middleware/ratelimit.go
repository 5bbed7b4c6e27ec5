package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

// RateLimiter is a fixed-window request limiter keyed by client identity.
// It is owned by the transport layer and injected into the router; the
// engine underneath never sees it.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clients map[string]*windowCounter

	// now is swappable for tests
	now func() time.Time
}

type windowCounter struct {
	count       int
	windowStart time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		clients: make(map[string]*windowCounter),
		now:     time.Now,
	}
}

// Allow counts one request for clientID and reports whether it fits inside
// the current window. A new window starts once the old one has elapsed.
func (rl *RateLimiter) Allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	counter, ok := rl.clients[clientID]
	if !ok || now.Sub(counter.windowStart) > rl.window {
		rl.clients[clientID] = &windowCounter{count: 1, windowStart: now}
		return true
	}

	counter.count++
	return counter.count <= rl.limit
}

// Handler rejects over-limit requests with 429.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(clientID(r)) {
			response.TooManyRequests(w, "Too many requests. Please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID keys a request by its remote host. RealIP runs earlier in the
// chain, so a forwarded address has already been resolved into RemoteAddr.
func clientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
