// Package settings reads coolmode's command settings from the environment
// and optional .env files.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/phanxgames/coolmode"
)

// Environment keys.
const (
	KeyLimit    = "COOLMODE_LIMIT"
	KeyDelay    = "COOLMODE_DELAY_MS"
	KeyParticle = "COOLMODE_PARTICLE" // "circle" or an image path
	KeySize     = "COOLMODE_SIZE"
	KeySizes    = "COOLMODE_SIZES" // comma-separated
	KeyFPS      = "COOLMODE_FPS"
	KeyFade     = "COOLMODE_FADE_MS"
	KeySeed     = "COOLMODE_SEED"
	KeyDebug    = "COOLMODE_DEBUG"
	KeySound    = "COOLMODE_SOUND"
	KeyVolume   = "COOLMODE_VOLUME"
)

// Settings is everything the commands read from the environment. Zero
// numeric fields mean "use the engine default".
type Settings struct {
	Limit     int
	Delay     time.Duration
	ImagePath string // empty means circles
	Size      float64
	Sizes     []float64
	FPS       int
	FadeIn    time.Duration
	Seed      uint64
	Debug     bool
	Sound     bool
	Volume    float64
}

// Load reads files into the process environment (a missing file is skipped,
// existing variables win) and then parses the COOLMODE_* keys. With no files
// it reads ".env" from the working directory.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("settings: load %s: %w", f, err)
		}
	}
	return Parse(os.LookupEnv)
}

// ParseDotenv parses the COOLMODE_* keys from .env-formatted text, ignoring
// the process environment.
func ParseDotenv(text string) (Settings, error) {
	env, err := godotenv.Unmarshal(text)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}
	return Parse(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
}

// Parse reads the COOLMODE_* keys through lookup.
func Parse(lookup func(string) (string, bool)) (Settings, error) {
	p := parser{lookup: lookup}
	s := Settings{
		Limit:  p.int(KeyLimit),
		Delay:  p.millis(KeyDelay),
		Size:   p.float(KeySize),
		Sizes:  p.floats(KeySizes),
		FPS:    p.int(KeyFPS),
		FadeIn: p.millis(KeyFade),
		Seed:   uint64(p.int(KeySeed)),
		Debug:  p.bool(KeyDebug),
		Sound:  p.bool(KeySound),
		Volume: 0.5,
	}
	if v, ok := p.get(KeyVolume); ok {
		s.Volume = p.parseFloat(KeyVolume, v)
	}
	if v, ok := p.get(KeyParticle); ok && !strings.EqualFold(v, "circle") {
		s.ImagePath = v
	}
	if p.err != nil {
		return Settings{}, p.err
	}
	return s, nil
}

// Config converts s into an engine configuration.
func (s Settings) Config() coolmode.Config {
	cfg := coolmode.Config{
		Limit:         s.Limit,
		EmissionDelay: s.Delay,
		Size:          s.Size,
		Sizes:         s.Sizes,
		FrameRate:     s.FPS,
		FadeIn:        s.FadeIn,
		Seed:          s.Seed,
	}
	if s.ImagePath != "" {
		cfg.Particle = coolmode.ImageFile(s.ImagePath)
	}
	return cfg
}

// parser collects the first error and keeps going.
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) get(key string) (string, bool) {
	v, ok := p.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (p *parser) fail(key, v string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("settings: %s=%q: %w", key, v, err)
	}
}

func (p *parser) int(key string) int {
	v, ok := p.get(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return 0
	}
	if n < 0 {
		p.fail(key, v, errors.New("must not be negative"))
		return 0
	}
	return n
}

func (p *parser) millis(key string) time.Duration {
	return time.Duration(p.int(key)) * time.Millisecond
}

func (p *parser) float(key string) float64 {
	v, ok := p.get(key)
	if !ok {
		return 0
	}
	return p.parseFloat(key, v)
}

func (p *parser) parseFloat(key, v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, v, err)
		return 0
	}
	return f
}

func (p *parser) floats(key string) []float64 {
	v, ok := p.get(key)
	if !ok {
		return nil
	}
	var out []float64
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, p.parseFloat(key, part))
	}
	return out
}

func (p *parser) bool(key string) bool {
	v, ok := p.get(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
	}
	return b
}
