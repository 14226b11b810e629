package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseDotenv(t *testing.T) {
	s, err := ParseDotenv(`
# particle tuning
COOLMODE_LIMIT=40
COOLMODE_DELAY_MS=20
COOLMODE_SIZES="8, 12,16"
COOLMODE_FPS=60
COOLMODE_FADE_MS=150
COOLMODE_DEBUG=true
COOLMODE_SOUND=1
COOLMODE_VOLUME=0.25
COOLMODE_PARTICLE=assets/star.png
`)
	if err != nil {
		t.Fatal(err)
	}
	if s.Limit != 40 {
		t.Errorf("Limit = %d, want 40", s.Limit)
	}
	if s.Delay != 20*time.Millisecond {
		t.Errorf("Delay = %v, want 20ms", s.Delay)
	}
	if len(s.Sizes) != 3 || s.Sizes[0] != 8 || s.Sizes[2] != 16 {
		t.Errorf("Sizes = %v, want [8 12 16]", s.Sizes)
	}
	if s.FPS != 60 || s.FadeIn != 150*time.Millisecond {
		t.Errorf("FPS = %d FadeIn = %v", s.FPS, s.FadeIn)
	}
	if !s.Debug || !s.Sound || s.Volume != 0.25 {
		t.Errorf("Debug = %v Sound = %v Volume = %v", s.Debug, s.Sound, s.Volume)
	}
	if s.ImagePath != "assets/star.png" {
		t.Errorf("ImagePath = %q", s.ImagePath)
	}

	cfg := s.Config()
	if cfg.Limit != 40 || cfg.EmissionDelay != 20*time.Millisecond || cfg.FrameRate != 60 {
		t.Errorf("Config = %+v", cfg)
	}
	if cfg.Particle == nil {
		t.Error("Config.Particle should be set for an image path")
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := ParseDotenv("COOLMODE_PARTICLE=Circle\n")
	if err != nil {
		t.Fatal(err)
	}
	if s.ImagePath != "" {
		t.Errorf("ImagePath = %q, want circles", s.ImagePath)
	}
	if s.Limit != 0 || s.Delay != 0 || s.Sizes != nil {
		t.Errorf("unset keys should stay zero: %+v", s)
	}
	if s.Volume != 0.5 {
		t.Errorf("Volume = %v, want 0.5", s.Volume)
	}
	if s.Config().Particle != nil {
		t.Error("circle setting should leave Config.Particle nil")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		env  string
		key  string
	}{
		{"bad int", "COOLMODE_LIMIT=lots", KeyLimit},
		{"negative", "COOLMODE_DELAY_MS=-5", KeyDelay},
		{"bad float", "COOLMODE_SIZE=big", KeySize},
		{"bad list", "COOLMODE_SIZES=1,x", KeySizes},
		{"bad bool", "COOLMODE_DEBUG=maybe", KeyDebug},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDotenv(tt.env)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q should name %s", err, tt.key)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coolmode.env")
	if err := os.WriteFile(path, []byte("COOLMODE_FPS=24\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(KeyFPS, "")
	os.Unsetenv(KeyFPS)

	s, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if s.FPS != 24 {
		t.Errorf("FPS = %d, want 24", s.FPS)
	}
}

func TestLoadEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coolmode.env")
	if err := os.WriteFile(path, []byte("COOLMODE_LIMIT=3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(KeyLimit, "9")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Limit != 9 {
		t.Errorf("Limit = %d, want 9 from the environment", s.Limit)
	}
}
