package handlers

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleLimiterTTL is how long a user's limiter is kept after its last command
const idleLimiterTTL = 10 * time.Minute

// userLimiter keeps one token bucket per user id
type userLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
	now      func() time.Time
	lastGC   time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newUserLimiter(every time.Duration, burst int) *userLimiter {
	return &userLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Every(every),
		burst:    burst,
		now:      time.Now,
	}
}

func (l *userLimiter) Allow(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.gc(now)

	entry, ok := l.limiters[userID]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[userID] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

func (l *userLimiter) gc(now time.Time) {
	if now.Sub(l.lastGC) < idleLimiterTTL {
		return
	}
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > idleLimiterTTL {
			delete(l.limiters, key)
		}
	}
	l.lastGC = now
}
