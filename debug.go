package coolmode

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugf prints a lifecycle message to stderr when debug mode is on.
func (s *Stage) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[coolmode] "+format+"\n", args...)
}

// logf prints a message to stderr regardless of debug mode.
func (s *Stage) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[coolmode] "+format+"\n", args...)
}

// hudBackground is drawn behind the stats text for readability.
var hudBackground = color.RGBA{0, 0, 0, 128}

// debugHUDText formats the stats panel shown in debug mode.
func (s *Stage) debugHUDText(fps, tps float64) string {
	live := 0
	if o := s.overlay.current(); o != nil {
		live = o.Len()
	}
	timers, frames, idle := s.loop.Pending()
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nengines: %d\nparticles: %d\nqueued: %d/%d/%d",
		fps, tps, s.overlay.refs(), live, timers, frames, idle)
}

// drawDebugHUD draws the stats panel in the top-left corner.
func (s *Stage) drawDebugHUD(screen *ebiten.Image) {
	text := s.debugHUDText(ebiten.ActualFPS(), ebiten.ActualTPS())
	vector.DrawFilledRect(screen, 0, 0, 140, 80, hudBackground, false)
	ebitenutil.DebugPrint(screen, text)
}
