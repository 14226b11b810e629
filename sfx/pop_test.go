package sfx

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) (samples [][2]float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		samples = append(samples, buf[:n]...)
		if !ok {
			return samples
		}
	}
}

func TestPopFrequency(t *testing.T) {
	tests := []struct {
		size float64
		want float64
	}{
		{0, maxPopFreq},
		{smallSize, maxPopFreq},
		{largeSize, minPopFreq},
		{100, minPopFreq},
	}
	for _, tt := range tests {
		if got := PopFrequency(tt.size); got != tt.want {
			t.Errorf("PopFrequency(%v) = %v, want %v", tt.size, got, tt.want)
		}
	}
	if PopFrequency(10) <= PopFrequency(25) {
		t.Error("smaller particles should pop higher")
	}
}

func TestPopLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(NewPop(rate, 20, 1))
	if want := rate.N(PopDuration); len(samples) != want {
		t.Errorf("pop length = %d samples, want %d", len(samples), want)
	}
}

func TestPopRangeAndShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(NewPop(rate, 15, 1))

	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 (attack starts silent)", samples[0][0])
	}
	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range samples[from:to] {
			if s[0] < -1 || s[0] > 1 {
				t.Fatalf("sample %v out of [-1, 1]", s[0])
			}
			if s[0] != s[1] {
				t.Fatalf("channels differ: %v", s)
			}
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	q := len(samples) / 4
	if head, tail := peak(0, q), peak(3*q, len(samples)); tail >= head {
		t.Errorf("tail peak %v should be below head peak %v", tail, head)
	}
}

func TestPopSilentAtZeroVolume(t *testing.T) {
	for _, s := range drain(NewPop(44100, 20, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %v, want silence", s)
		}
	}
}

func TestPlayBeforeInitIsNoop(t *testing.T) {
	p := NewPlayer(0.5)
	p.Play(20)
	p.Close()
	if p.mixer.Len() != 0 {
		t.Errorf("mixer Len = %d, want 0", p.mixer.Len())
	}
}
