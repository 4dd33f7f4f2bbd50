// Package ratelimiter throttles state-changing requests per user with a token
// bucket. Idle buckets are swept periodically.
package ratelimiter

import (
	"sync"
	"time"
)

// bucket is a token bucket refilled continuously at the limiter's rate.
type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// Limiter keeps one bucket per identity.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64
	burst    float64
	idle     time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// New returns a limiter allowing rate requests per second with bursts of up
// to burst. Buckets unused for idle are dropped.
func New(rate, burst float64, idle time.Duration) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucket),
		rate:    rate,
		burst:   burst,
		idle:    idle,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	if idle > 0 {
		go l.sweepLoop()
	}
	return l
}

// Allow takes one token from identity's bucket.
func (l *Limiter) Allow(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[identity]
	if !ok {
		b = &bucket{tokens: l.burst, lastSeen: now}
		l.buckets[identity] = b
	}

	b.tokens += now.Sub(b.lastSeen).Seconds() * l.rate
	if b.tokens > l.burst {
		b.tokens = l.burst
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (l *Limiter) sweepLoop() {
	ticker := time.NewTicker(l.idle)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := l.now().Add(-l.idle)
	for id, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, id)
		}
	}
}

// Stop ends the sweeper. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
