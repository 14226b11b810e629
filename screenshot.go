package coolmode

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame, overlay
// included. The PNG lands in ScreenshotDir as <timestamp>_<label>.png.
func (s *Stage) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// Screenshots returns the paths written by the most recent capture, in queue
// order. Failed writes are left out.
func (s *Stage) Screenshots() []string {
	return append([]string(nil), s.shots...)
}

// PendingScreenshots returns the number of captures waiting for Draw.
func (s *Stage) PendingScreenshots() int {
	return len(s.screenshotQueue)
}

// flushScreenshots writes every queued capture of screen. Runs at the end of
// Stage.Draw so the overlay is in the frame.
func (s *Stage) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	labels := s.screenshotQueue
	s.screenshotQueue = nil
	s.shots = nil

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		s.logf("screenshot: %v", err)
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, name := range screenshotNames(stamp, labels) {
		path := filepath.Join(s.ScreenshotDir, name)
		if err := writePNG(path, img); err != nil {
			s.logf("screenshot: %v", err)
			continue
		}
		s.shots = append(s.shots, path)
		s.debugf("screenshot %s", path)
	}
}

// unpremultiply converts ebiten's premultiplied RGBA pixels to straight-alpha
// NRGBA for PNG encoding.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = uint8(min(int(img.Pix[i+c])*255/a, 255))
		}
	}
	return img
}

// screenshotNames builds one file name per label. A label repeated within
// the same capture gets a numeric suffix so files do not overwrite each other.
func screenshotNames(stamp string, labels []string) []string {
	seen := make(map[string]int, len(labels))
	names := make([]string, len(labels))
	for i, label := range labels {
		safe := sanitizeLabel(label)
		seen[safe]++
		if n := seen[safe]; n > 1 {
			safe = fmt.Sprintf("%s-%d", safe, n)
		}
		names[i] = stamp + "_" + safe + ".png"
	}
	return names
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replaces everything else
// with '_', and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
