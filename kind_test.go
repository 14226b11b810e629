package coolmode

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestCircleKindResolve(t *testing.T) {
	p, err := Circle().resolve([]float64{10, 12.5})
	if err != nil {
		t.Fatal(err)
	}
	if p.shape != ShapeCircle || !p.tint {
		t.Errorf("shape = %v tint = %v, want tinted circle", p.shape, p.tint)
	}
	img := p.templates[12.5]
	if img == nil {
		t.Fatal("missing template for 12.5")
	}
	if w := img.Bounds().Dx(); w != 13 {
		t.Errorf("template width = %d, want 13", w)
	}
}

func TestCircleTemplateShared(t *testing.T) {
	if circleTemplate(20) != circleTemplate(20) {
		t.Error("circle templates for the same size should be shared")
	}
	if circleTemplate(20) == circleTemplate(25) {
		t.Error("different sizes should not share a template")
	}
}

func TestImageKindResolve(t *testing.T) {
	p, err := Image(ebiten.NewImage(32, 16)).resolve([]float64{10})
	if err != nil {
		t.Fatal(err)
	}
	if p.shape != ShapeImage || p.tint {
		t.Errorf("shape = %v tint = %v, want untinted image", p.shape, p.tint)
	}
	if w := p.templates[10].Bounds().Dx(); w != 10 {
		t.Errorf("template width = %d, want 10", w)
	}
}

func TestImageKindErrors(t *testing.T) {
	tests := []struct {
		name string
		kind ParticleKind
	}{
		{"nil image", Image(nil)},
		{"missing file", ImageFile(filepath.Join(t.TempDir(), "nope.png"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.kind.resolve([]float64{10}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestApplyFallsBackToCircles(t *testing.T) {
	s, el := newTestTarget()
	e := Apply(el, Config{Particle: ImageFile(filepath.Join(t.TempDir(), "missing.png")), Seed: 1})
	defer e.Detach()
	if e == nil {
		t.Fatal("Apply returned nil")
	}
	if e.paint.shape != ShapeCircle {
		t.Errorf("shape = %v, want circle fallback", e.paint.shape)
	}
	press(s, 50, 50)
	s.Step(tick)
	if e.Count() != 1 {
		t.Errorf("Count = %d, want 1", e.Count())
	}
}

func TestShapeString(t *testing.T) {
	if ShapeCircle.String() != "circle" || ShapeImage.String() != "image" || Shape(9).String() != "unknown" {
		t.Error("unexpected Shape names")
	}
}
