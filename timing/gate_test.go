package timing

import (
	"testing"
	"time"
)

func TestGateZeroValueAdmitsEverything(t *testing.T) {
	var g Gate
	for i := 0; i < 10; i++ {
		if !g.Allow(time.Duration(i)) {
			t.Fatalf("zero Gate rejected frame %d", i)
		}
	}
}

func TestGateInterval(t *testing.T) {
	g := NewGate(30)
	if g.Interval() != time.Second/30 {
		t.Errorf("Interval = %v, want %v", g.Interval(), time.Second/30)
	}
	g = NewGate(0)
	if g.Interval() != 0 {
		t.Errorf("Interval for fps 0 = %v, want 0", g.Interval())
	}
}

func TestGateAllow(t *testing.T) {
	g := NewGate(10) // 100ms
	tests := []struct {
		now  time.Duration
		want bool
	}{
		{0, true},
		{50 * ms, false},
		{99 * ms, false},
		{100 * ms, true},
		{150 * ms, false},
		{230 * ms, true},
	}
	for _, tt := range tests {
		if got := g.Allow(tt.now); got != tt.want {
			t.Errorf("Allow(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestGateReset(t *testing.T) {
	g := NewGate(10)
	g.Allow(0)
	if g.Allow(10 * ms) {
		t.Fatal("expected 10ms to be gated")
	}
	g.Reset()
	if !g.Allow(10 * ms) {
		t.Error("first frame after Reset should be admitted")
	}
}
