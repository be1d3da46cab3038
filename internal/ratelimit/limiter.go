package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	maxTrackedClients = 10_000
	clientIdleTTL     = 10 * time.Minute

	// globalFactor scales the per-client limit into the limit shared by all clients.
	globalFactor = 10
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter applies global and per-client request limits to the roast endpoints, which spend completion tokens.
type Limiter struct {
	global *rate.Limiter
	perIP  map[string]*clientLimiter
	mu     sync.Mutex

	rps   rate.Limit
	burst int
}

func New(rps float64, burst int) *Limiter {
	return &Limiter{
		global: rate.NewLimiter(rate.Limit(rps*globalFactor), burst*globalFactor),
		perIP:  make(map[string]*clientLimiter),
		rps:    rate.Limit(rps),
		burst:  burst,
	}
}

// Middleware rejects requests over the limit with 429. onDrop, if set, is called for each rejection.
func (l *Limiter) Middleware(onDrop func()) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(clientIP(r)) {
				if onDrop != nil {
					onDrop()
				}
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (l *Limiter) allow(ip string) bool {
	if !l.global.Allow() {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	item, ok := l.perIP[ip]
	if !ok {
		item = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.perIP[ip] = item
	}
	item.lastSeen = now

	if len(l.perIP) > maxTrackedClients {
		l.cleanupLocked(now.Add(-clientIdleTTL))
	}

	return item.limiter.Allow()
}

func (l *Limiter) cleanupLocked(threshold time.Time) {
	for ip, entry := range l.perIP {
		if entry.lastSeen.Before(threshold) {
			delete(l.perIP, ip)
		}
	}
}

// clientIP relies on chi's RealIP middleware having rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
