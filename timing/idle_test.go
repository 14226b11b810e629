package timing

import (
	"testing"
	"time"
)

// timeoutOnly hides EventLoop's IdleRequester implementation.
type timeoutOnly struct {
	Scheduler
}

func TestIdleCallbackUsesIdleQueue(t *testing.T) {
	l := NewEventLoop()
	var got []string
	f := IdleCallback(l, func(args ...string) { got = args }, IdleOptions{})
	f("warm", "cache")

	if _, _, idle := l.Pending(); idle != 1 {
		t.Fatalf("pending idle = %d, want 1", idle)
	}
	l.Advance(16 * ms)
	if len(got) != 2 || got[1] != "cache" {
		t.Errorf("got %v, want [warm cache]", got)
	}
}

func TestIdleCallbackFallsBackToTimeout(t *testing.T) {
	l := NewEventLoop()
	ran := time.Duration(-1)
	f := IdleCallback(timeoutOnly{l}, func(...int) { ran = l.Now() }, IdleOptions{Timeout: -1})
	f()

	if timers, _, idle := l.Pending(); timers != 1 || idle != 0 {
		t.Fatalf("pending timers=%d idle=%d, want 1 and 0", timers, idle)
	}
	l.Advance(5 * ms)
	if ran != MinTimeout {
		t.Errorf("ran at %v, want %v", ran, MinTimeout)
	}
}
