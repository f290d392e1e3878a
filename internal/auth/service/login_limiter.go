package service

import (
	"math"
	"sync"
	"time"

	"github.com/fiscalhub/fiscalhub/internal/auth/domain"
)

// loginAttempt tracks consecutive sign-in failures for one identifier.
type loginAttempt struct {
	count       int
	firstFailed time.Time
	lockedUntil time.Time
}

// LoginAttemptLimiter locks an identifier out of sign-in after repeated
// failures inside a rolling window. State is in-process; a restart
// releases all lockouts.
type LoginAttemptLimiter struct {
	mu          sync.Mutex
	attempts    map[string]*loginAttempt
	maxAttempts int
	window      time.Duration
}

// NewLoginAttemptLimiter creates a limiter allowing maxAttempts failures
// per identifier inside the given window before locking out.
func NewLoginAttemptLimiter(maxAttempts int, window time.Duration) *LoginAttemptLimiter {
	return &LoginAttemptLimiter{
		attempts:    make(map[string]*loginAttempt),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Check returns a *domain.RateLimitedError when the identifier is locked
// out, nil otherwise.
func (l *LoginAttemptLimiter) Check(identifier string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	attempt, ok := l.attempts[identifier]
	if !ok {
		return nil
	}

	now := time.Now()
	if !attempt.lockedUntil.IsZero() {
		if now.Before(attempt.lockedUntil) {
			remaining := attempt.lockedUntil.Sub(now)
			return &domain.RateLimitedError{
				Minutes: int(math.Ceil(remaining.Minutes())),
			}
		}
		delete(l.attempts, identifier)
	}
	return nil
}

// RecordFailure counts a failed sign-in. Reaching the configured maximum
// inside the window locks the identifier out for a full window.
func (l *LoginAttemptLimiter) RecordFailure(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	attempt, ok := l.attempts[identifier]
	if !ok || now.Sub(attempt.firstFailed) > l.window {
		attempt = &loginAttempt{firstFailed: now}
		l.attempts[identifier] = attempt
	}

	attempt.count++
	if attempt.count >= l.maxAttempts {
		attempt.lockedUntil = now.Add(l.window)
	}
}

// Clear forgets all failures for an identifier after a successful sign-in.
func (l *LoginAttemptLimiter) Clear(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, identifier)
}
