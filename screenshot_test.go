package coolmode

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"burst", "burst"},
		{"after-press", "after-press"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotNames(t *testing.T) {
	got := screenshotNames("20260101_120000", []string{"burst", "a b", "burst", ""})
	want := []string{
		"20260101_120000_burst.png",
		"20260101_120000_a_b.png",
		"20260101_120000_burst-2.png",
		"20260101_120000_unlabeled.png",
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		100, 50, 0, 255, // opaque: unchanged
		64, 32, 0, 128, // half alpha: doubled
		10, 10, 10, 0, // transparent: unchanged
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		100, 50, 0, 255,
		127, 63, 0, 128,
		10, 10, 10, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	s := NewStage(800, 600)
	s.Screenshot("a")
	s.Screenshot("b")
	if s.PendingScreenshots() != 2 {
		t.Fatalf("PendingScreenshots = %d, want 2", s.PendingScreenshots())
	}
	if s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.screenshotQueue)
	}
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
	if len(s.Screenshots()) != 0 {
		t.Errorf("Screenshots before Draw = %v, want none", s.Screenshots())
	}
}

func TestScreenshotsSurvivesNextCapture(t *testing.T) {
	s := NewStage(800, 600)
	s.shots = []string{"screenshots/a.png", "screenshots/b.png"}
	first := s.Screenshots()

	// A later flush starts a fresh list and appends to it.
	s.shots = nil
	s.shots = append(s.shots, "screenshots/c.png")
	first[1] = "edited"

	if first[0] != "screenshots/a.png" {
		t.Errorf("first[0] = %q, want %q", first[0], "screenshots/a.png")
	}
	got := s.Screenshots()
	if len(got) != 1 || got[0] != "screenshots/c.png" {
		t.Errorf("Screenshots = %v, want [screenshots/c.png]", got)
	}
}
