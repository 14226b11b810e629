package coolmode

import (
	"fmt"
	"image/color"
	_ "image/jpeg" // decoders for ImageFile
	_ "image/png"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/coolmode/timing"
)

// Shape identifies how a particle looks.
type Shape uint8

const (
	ShapeCircle Shape = iota // filled circle, random hue per particle
	ShapeImage               // circular crop of a user image
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeImage:
		return "image"
	default:
		return "unknown"
	}
}

// ParticleKind selects the particle appearance. Build one with Circle, Image
// or ImageFile. The kind is resolved once per Attach into per-size template
// images that every particle of that size then draws with.
type ParticleKind interface {
	resolve(sizes []float64) (paint, error)
}

// paint is a resolved ParticleKind.
type paint struct {
	shape     Shape
	tint      bool // randomize the color per particle
	templates map[float64]*ebiten.Image
}

type circleKind struct{}

// Circle returns the procedural particle kind: a filled circle whose hue is
// randomized per particle.
func Circle() ParticleKind { return circleKind{} }

func (circleKind) resolve(sizes []float64) (paint, error) {
	p := paint{shape: ShapeCircle, tint: true, templates: make(map[float64]*ebiten.Image, len(sizes))}
	for _, sz := range sizes {
		p.templates[sz] = circleTemplate(sz)
	}
	return p, nil
}

type imageKind struct {
	img  *ebiten.Image
	path string
}

// Image returns a particle kind that draws img, scaled to the particle size
// and cropped to a circle.
func Image(img *ebiten.Image) ParticleKind { return imageKind{img: img} }

// ImageFile is like Image but loads the image from path at Attach time. If
// loading fails the engine falls back to Circle.
func ImageFile(path string) ParticleKind { return imageKind{path: path} }

func (k imageKind) resolve(sizes []float64) (paint, error) {
	src := k.img
	if src == nil {
		if k.path == "" {
			return paint{}, fmt.Errorf("image particle: no image or path")
		}
		img, _, err := ebitenutil.NewImageFromFile(k.path)
		if err != nil {
			return paint{}, fmt.Errorf("image particle: load %s: %w", k.path, err)
		}
		src = img
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return paint{}, fmt.Errorf("image particle: empty image")
	}
	p := paint{shape: ShapeImage, templates: make(map[float64]*ebiten.Image, len(sizes))}
	for _, sz := range sizes {
		p.templates[sz] = newImageTemplate(src, sz)
	}
	return p, nil
}

// circleTemplate returns the shared white circle image for a size. Templates
// are built once per distinct size for the life of the process.
var circleTemplate = func() func(float64) *ebiten.Image {
	build := timing.Memoize(func(size ...float64) *ebiten.Image {
		return newCircleImage(size[0])
	})
	return func(size float64) *ebiten.Image { return build(size) }
}()

// templateEdge is the pixel edge of a template for a particle size.
func templateEdge(size float64) int {
	return max(1, int(math.Ceil(size)))
}

func newCircleImage(size float64) *ebiten.Image {
	img := ebiten.NewImage(templateEdge(size), templateEdge(size))
	r := float32(size / 2)
	vector.DrawFilledCircle(img, r, r, r, color.White, true)
	return img
}

// newImageTemplate scales src into a size-by-size square and crops it to the
// inscribed circle.
func newImageTemplate(src *ebiten.Image, size float64) *ebiten.Image {
	n := templateEdge(size)
	dst := ebiten.NewImage(n, n)
	b := src.Bounds()

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(n)/float64(b.Dx()), float64(n)/float64(b.Dy()))
	dst.DrawImage(src, op)

	mask := &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn}
	dst.DrawImage(circleTemplate(size), mask)
	return dst
}
