package services

import (
	"math"
	"sync"
	"time"
)

const throttleCooldownCapSeconds = 30

// OtpThrottle rate-limits OTP requests per mobile number with an
// exponential cooldown: min(30, 2^failCount) seconds after each
// request, reset on successful verification. State is in-process; a
// restart forgives everyone, which is acceptable for a login nuisance
// guard.
type OtpThrottle struct {
	mu      sync.Mutex
	entries map[string]*throttleEntry
	now     func() time.Time
}

type throttleEntry struct {
	failCount     int
	cooldownUntil time.Time
}

func NewOtpThrottle() *OtpThrottle {
	return &OtpThrottle{
		entries: make(map[string]*throttleEntry),
		now:     time.Now,
	}
}

// WaitSeconds returns how long the number must wait before the next
// OTP request, 0 when none.
func (t *OtpThrottle) WaitSeconds(mobile string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[mobile]
	if !ok {
		return 0
	}
	now := t.now()
	if now.Before(e.cooldownUntil) {
		return int(e.cooldownUntil.Sub(now).Seconds()) + 1 // round up
	}
	return 0
}

// RecordRequest counts an OTP issuance and arms the next cooldown.
func (t *OtpThrottle) RecordRequest(mobile string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[mobile]
	if !ok {
		e = &throttleEntry{}
		t.entries[mobile] = e
	}
	e.failCount++
	e.cooldownUntil = t.now().Add(time.Duration(CooldownSecondsForFailCount(e.failCount)) * time.Second)
}

// RecordSuccess resets the cooldown after a verified login.
func (t *OtpThrottle) RecordSuccess(mobile string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, mobile)
}

// CooldownSecondsForFailCount returns min(30, 2^failCount).
func CooldownSecondsForFailCount(failCount int) int {
	s := int(math.Pow(2, float64(failCount)))
	if s > throttleCooldownCapSeconds {
		return throttleCooldownCapSeconds
	}
	return s
}
