package portfolio

import (
	"testing"
	"time"
)

func TestEventLimiterBlocksAfterMax(t *testing.T) {
	limiter := NewEventLimiter(2, 200*time.Millisecond)
	defer limiter.Stop()
	ip := "203.0.113.10"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first event to be allowed")
	}
	if !limiter.Allow(ip) {
		t.Fatalf("expected second event to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected third event to be blocked")
	}
}

func TestEventLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewEventLimiter(1, 150*time.Millisecond)
	defer limiter.Stop()
	ip := "203.0.113.20"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first event to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected second event to be blocked")
	}

	time.Sleep(200 * time.Millisecond)
	if !limiter.Allow(ip) {
		t.Fatalf("expected event after window to be allowed")
	}
}

func TestEventLimiterIsPerIP(t *testing.T) {
	limiter := NewEventLimiter(1, 200*time.Millisecond)
	defer limiter.Stop()

	if !limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be allowed")
	}
	if !limiter.Allow("203.0.113.31") {
		t.Fatalf("expected second ip to be allowed independently")
	}
	if limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be blocked after max")
	}
}

func TestEventLimiterStopTwice(t *testing.T) {
	limiter := NewEventLimiter(1, time.Second)
	limiter.Stop()
	limiter.Stop()
}
