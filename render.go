package coolmode

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders every live visual onto dst in insertion order. Visuals
// without a template (headless engines) are skipped.
func (o *Overlay) Draw(dst *ebiten.Image) {
	if o == nil || o.destroyed || len(o.visuals) == 0 {
		return
	}

	var op ebiten.DrawImageOptions
	op.Filter = ebiten.FilterLinear

	for _, v := range o.visuals {
		if v.Template == nil || v.Alpha <= 0 || v.Scale <= 0 {
			continue
		}
		op.GeoM = visualGeoM(v)
		op.ColorScale = v.Color.colorScale(v.Alpha)
		dst.DrawImage(v.Template, &op)
	}
}

// visualGeoM places a size-by-size template: scale and rotate about the
// template center, then move its top-left corner to (v.X, v.Y).
func visualGeoM(v *Visual) ebiten.GeoM {
	half := v.Size / 2
	var m ebiten.GeoM
	if v.Template != nil {
		// Templates are rounded up to whole pixels; fit them back to Size.
		b := v.Template.Bounds()
		if b.Dx() > 0 && b.Dy() > 0 {
			m.Scale(v.Size/float64(b.Dx()), v.Size/float64(b.Dy()))
		}
	}
	m.Translate(-half, -half)
	if v.Scale != 1 {
		m.Scale(v.Scale, v.Scale)
	}
	if v.Rotation != 0 {
		m.Rotate(v.Rotation * math.Pi / 180)
	}
	m.Translate(v.X+half, v.Y+half)
	return m
}
