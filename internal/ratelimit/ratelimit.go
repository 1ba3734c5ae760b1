package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a fixed-window per-client request counter. It blunts brute
// force login attempts and is applied globally, not per endpoint.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*clientInfo

	requestsPerMinute int
	cleanupInterval   time.Duration

	stopCleanup chan struct{}
	stopOnce    sync.Once
}

type clientInfo struct {
	windowStart time.Time
	requests    int
}

func NewLimiter(requestsPerMinute int) *Limiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}

	l := &Limiter{
		clients:           make(map[string]*clientInfo),
		requestsPerMinute: requestsPerMinute,
		cleanupInterval:   5 * time.Minute,
		stopCleanup:       make(chan struct{}),
	}
	go l.startCleanup()
	return l
}

// Allow reports whether a request from the given client IP fits inside the
// current window.
func (l *Limiter) Allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	client, exists := l.clients[clientIP]

	if !exists || now.Sub(client.windowStart) > time.Minute {
		l.clients[clientIP] = &clientInfo{windowStart: now, requests: 1}
		return true
	}

	client.requests++
	return client.requests <= l.requestsPerMinute
}

func (l *Limiter) startCleanup() {
	ticker := time.NewTicker(l.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanupStaleEntries()
		case <-l.stopCleanup:
			return
		}
	}
}

func (l *Limiter) cleanupStaleEntries() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-2 * time.Minute)
	for ip, client := range l.clients {
		if client.windowStart.Before(cutoff) {
			delete(l.clients, ip)
		}
	}
}

// Stop shuts down the background cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCleanup)
	})
}
