package filter

import (
	"fmt"

	"github.com/gogpu/softgfx"
	"github.com/gogpu/softgfx/internal/blend"
)

// DropShadow renders a blurred, tinted copy of a surface's silhouette
// beneath it.
type DropShadow struct {
	// OffsetX and OffsetY move the shadow relative to the source.
	OffsetX, OffsetY int

	// Radius and Passes configure the shadow blur. Passes of 0 uses 3.
	Radius, Passes int

	// Color tints the silhouette. Its alpha scales the source alpha.
	Color softgfx.Color

	blur Blur
}

// NewDropShadow returns a shadow offset by (dx, dy) in translucent black
// with a radius-3, three-pass blur.
func NewDropShadow(dx, dy int) *DropShadow {
	return &DropShadow{
		OffsetX: dx,
		OffsetY: dy,
		Radius:  3,
		Passes:  3,
		Color:   softgfx.RGBA(0, 0, 0, 128),
	}
}

// Margin returns how far the shadow can reach beyond the source on each
// side: the blur extent plus the offset on the side it points to.
func (f *DropShadow) Margin() (left, top, right, bottom int) {
	pad := min(max(f.Radius, 0), MaxRadius) * f.passes()
	left, top, right, bottom = pad, pad, pad, pad
	if f.OffsetX < 0 {
		left -= f.OffsetX
	} else {
		right += f.OffsetX
	}
	if f.OffsetY < 0 {
		top -= f.OffsetY
	} else {
		bottom += f.OffsetY
	}
	return left, top, right, bottom
}

func (f *DropShadow) passes() int {
	if f.Passes <= 0 {
		return 3
	}
	return min(f.Passes, MaxPasses)
}

// Apply returns a new surface, grown by Margin, holding the shadow with
// src composited over it. The source sits at (left, top) of the result.
func (f *DropShadow) Apply(src *softgfx.Surface) (*softgfx.Surface, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil surface", softgfx.ErrInvalidDimensions)
	}
	left, top, right, bottom := f.Margin()
	out, err := softgfx.NewSurface(src.Width()+left+right, src.Height()+top+bottom, false)
	if err != nil {
		return nil, err
	}

	// Silhouette.
	tint := f.Color.Premultiplied()
	pix, stride := out.Pix(), out.Stride()
	ox, oy := left+f.OffsetX, top+f.OffsetY
	var row []uint32
	for y := 0; y < src.Height(); y++ {
		row = src.ReadRow(y, row)
		dst := pix[(y+oy)*stride+ox:]
		for x, p := range row {
			dst[x] = blend.Scale(tint, uint8(p>>24))
		}
	}

	f.blur.Radius, f.blur.Passes = f.Radius, f.passes()
	if err := f.blur.Apply(out, out); err != nil {
		return nil, err
	}

	g, err := out.NewGraphics()
	if err != nil {
		return nil, err
	}
	g.DrawTextureAt(src, float64(left), float64(top))
	return out, nil
}
