package httpmiddleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-faster/jx"
)

// RateLimitConfig configures RateLimit.
type RateLimitConfig struct {
	// Max requests per Window per key. Zero disables limiting.
	Max    int
	Window time.Duration
	// KeyFunc picks the bucket for a request. Defaults to the API key header
	// and falls back to the client IP.
	KeyFunc func(r *http.Request) string
}

// bucket approximates a sliding window by weighting the previous fixed
// window by how much of it still overlaps the current instant.
type bucket struct {
	start time.Time
	prev  int
	curr  int
}

type limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	max     int
	window  time.Duration
	now     func() time.Time
}

func newLimiter(limit int, window time.Duration) *limiter {
	return &limiter{
		buckets: make(map[string]*bucket),
		max:     limit,
		window:  window,
		now:     time.Now,
	}
}

// allow records a hit for key and reports whether it fits the limit, the
// requests left in the window and the seconds to wait when it does not fit.
func (l *limiter) allow(key string) (ok bool, remaining, retry int) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{start: now.Truncate(l.window)}
		l.buckets[key] = b
	}
	l.roll(b, now)

	elapsed := now.Sub(b.start)
	weight := float64(l.window-elapsed) / float64(l.window)
	used := int(float64(b.prev)*weight) + b.curr
	if used >= l.max {
		retry = int((l.window - elapsed + time.Second - 1) / time.Second)
		return false, 0, max(retry, 1)
	}
	b.curr++
	return true, l.max - used - 1, 0
}

func (l *limiter) roll(b *bucket, now time.Time) {
	switch n := now.Sub(b.start) / l.window; {
	case n == 1:
		b.prev, b.curr = b.curr, 0
		b.start = b.start.Add(l.window)
	case n > 1:
		b.prev, b.curr = 0, 0
		b.start = now.Truncate(l.window)
	}
}

// sweep drops buckets idle for two windows.
func (l *limiter) sweep() {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, b := range l.buckets {
		if now.Sub(b.start) >= 2*l.window {
			delete(l.buckets, k)
		}
	}
}

// RateLimit rejects requests over the configured budget with 429. Buckets
// are never evicted; long running servers should use RateLimitWithCleanup.
func RateLimit(cfg RateLimitConfig) Middleware {
	if cfg.Max <= 0 || cfg.Window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return rateLimit(cfg, newLimiter(cfg.Max, cfg.Window))
}

// RateLimitWithCleanup is RateLimit with a background sweeper bound to ctx.
func RateLimitWithCleanup(ctx context.Context, cfg RateLimitConfig) Middleware {
	if cfg.Max <= 0 || cfg.Window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	l := newLimiter(cfg.Max, cfg.Window)
	go func() {
		t := time.NewTicker(cfg.Window)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.sweep()
			}
		}
	}()
	return rateLimit(cfg, l)
}

func rateLimit(cfg RateLimitConfig, l *limiter) Middleware {
	keyFunc := cfg.KeyFunc
	if keyFunc == nil {
		keyFunc = clientKey
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, remaining, retry := l.allow(keyFunc(r))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.max))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if k := r.Header.Get("api_key"); k != "" {
		return "key:" + k
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func writeError(w http.ResponseWriter, status int, msg string) {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Int(status) })
		e.Field("message", func(e *jx.Encoder) { e.Str(msg) })
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
