package api

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	// Judges tap scores in at human speed; anything past this is a runaway
	// client.
	defaultScoreRate  = rate.Limit(5)
	defaultScoreBurst = 10
)

// judgeLimiter throttles score submissions per judge.
type judgeLimiter struct {
	mu       sync.Mutex
	limiters map[uuid.UUID]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newJudgeLimiter(limit rate.Limit, burst int) *judgeLimiter {
	return &judgeLimiter{
		limiters: make(map[uuid.UUID]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

// Allow reports whether the judge may submit another score right now.
func (l *judgeLimiter) Allow(judgeID uuid.UUID) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[judgeID]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[judgeID] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}
