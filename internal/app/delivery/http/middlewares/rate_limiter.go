package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// CredentialLimiter throttles login and register attempts per source
// IP on top of the global rate limit. An IP that exhausts its burst is
// blocked for the configured duration.
type CredentialLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	attempts  int
	blockTime time.Duration
}

func NewCredentialLimiter(attemptsPerMinute int, blockTime time.Duration) *CredentialLimiter {
	return &CredentialLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		attempts:  attemptsPerMinute,
		blockTime: blockTime,
	}
}

func (l *CredentialLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		l.mu.Lock()

		if blockedUntil, found := l.blocked[ip]; found {
			if time.Now().Before(blockedUntil) {
				l.mu.Unlock()
				http.Error(w, "Too many attempts, you are temporarily blocked.", http.StatusTooManyRequests)
				return
			}
			delete(l.blocked, ip)
		}

		limiter, exists := l.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.attempts)), l.attempts)
			l.limiters[ip] = limiter
		}

		l.mu.Unlock()

		if !limiter.Allow() {
			l.mu.Lock()
			l.blocked[ip] = time.Now().Add(l.blockTime)
			l.mu.Unlock()

			http.Error(w, "Too many attempts, you are temporarily blocked.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
