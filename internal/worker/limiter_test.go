package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowsBurstThenThrottles(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow() || !l.Allow() {
		t.Fatal("burst of 2 should be allowed immediately")
	}
	if l.Allow() {
		t.Fatal("third immediate request should be throttled")
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	l.Allow() // drain the bucket

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx); err == nil {
		t.Fatal("Wait should fail once the context deadline passes")
	}
}
