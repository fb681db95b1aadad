package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	h "playerone/internal/delivery/http/helpers"
)

// RateLimitConfig sets the per-client token bucket.
// TrustedProxies lists the addresses or CIDR ranges of reverse proxies whose
// X-Forwarded-For header is honored. Other callers are keyed by RemoteAddr.
type RateLimitConfig struct {
	RPS            float64
	Burst          int
	IdleTTL        time.Duration
	TrustedProxies []string
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP in memory.
type RateLimiter struct {
	conf    RateLimitConfig
	mu      sync.Mutex
	buckets map[string]*clientBucket
	trusted []netip.Prefix
	now     func() time.Time
}

func NewRateLimiter(conf RateLimitConfig) *RateLimiter {
	if conf.Burst <= 0 {
		conf.Burst = 1
	}
	if conf.IdleTTL <= 0 {
		conf.IdleTTL = 10 * time.Minute
	}
	return &RateLimiter{
		conf:    conf,
		buckets: make(map[string]*clientBucket),
		trusted: parsePrefixes(conf.TrustedProxies),
		now:     time.Now,
	}
}

// parsePrefixes skips entries that are neither an address nor a CIDR range.
func parsePrefixes(entries []string) []netip.Prefix {
	var out []netip.Prefix
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if p, err := netip.ParsePrefix(e); err == nil {
			out = append(out, p.Masked())
			continue
		}
		if a, err := netip.ParseAddr(e); err == nil {
			a = a.Unmap()
			out = append(out, netip.PrefixFrom(a, a.BitLen()))
		}
	}
	return out
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if b, ok := rl.buckets[key]; ok {
		b.lastSeen = now
		return b.limiter
	}
	lim := rate.NewLimiter(rate.Limit(rl.conf.RPS), rl.conf.Burst)
	rl.buckets[key] = &clientBucket{limiter: lim, lastSeen: now}
	return lim
}

// Evict drops buckets idle for longer than IdleTTL and returns how many were removed.
func (rl *RateLimiter) Evict() int {
	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	n := 0
	for k, b := range rl.buckets {
		if now.Sub(b.lastSeen) > rl.conf.IdleTTL {
			delete(rl.buckets, k)
			n++
		}
	}
	return n
}

// RunEviction evicts idle buckets every IdleTTL/2 until stop is closed.
func (rl *RateLimiter) RunEviction(stop <-chan struct{}) {
	ticker := time.NewTicker(rl.conf.IdleTTL / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.Evict()
		case <-stop:
			return
		}
	}
}

// Limit wraps next, answering 429 once the caller's bucket is empty.
func (rl *RateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiter(rl.clientIP(r)).Allow() {
			w.Header().Set("Retry-After", "1")
			h.WriteJSONError(w, http.StatusTooManyRequests, h.ErrCodeTooManyRequests, "too many requests, please try again later")
			return
		}
		next(w, r)
	}
}

// clientIP returns the connection address. When the connection comes from a
// trusted proxy, X-Forwarded-For is walked from the right and the first hop
// that is not itself a trusted proxy is used.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if !rl.isTrusted(host) {
		return host
	}
	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !rl.isTrusted(hop) {
			return hop
		}
	}
	return host
}

func (rl *RateLimiter) isTrusted(ip string) bool {
	if len(rl.trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range rl.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
