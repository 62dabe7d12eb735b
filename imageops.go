package softgfx

import (
	"fmt"
	"math"

	"github.com/gogpu/softgfx/internal/blend"
	intColor "github.com/gogpu/softgfx/internal/color"
)

// Whole-surface operations. Each returns a new compact mutable surface and
// leaves s untouched; s may be immutable or a view.

func blank(w, h int, opaque bool) *Surface {
	s := &Surface{width: w, height: h, stride: w, pix: make([]uint32, w*h), opaque: opaque, mutable: true}
	if opaque {
		fill(s.pix, 0xff000000)
	}
	return s
}

// Crop returns a copy of the w×h region at (x, y).
func (s *Surface) Crop(x, y, w, h int) (*Surface, error) {
	v, err := s.SubSurface(x, y, w, h)
	if err != nil {
		return nil, err
	}
	return v.compactCopy(true), nil
}

// Split cuts s into across×down equal frames, row by row. Pixels left over
// on the right and bottom edges are dropped.
func (s *Surface) Split(across, down int) ([]*Surface, error) {
	if across <= 0 || down <= 0 {
		return nil, fmt.Errorf("%w: %dx%d frames", ErrInvalidDimensions, across, down)
	}
	w, h := s.width/across, s.height/down
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: %dx%d frames of %dx%d", ErrInvalidDimensions, across, down, s.width, s.height)
	}
	frames := make([]*Surface, 0, across*down)
	for i := 0; i < across*down; i++ {
		f, err := s.Crop(i%across*w, i/across*h, w, h)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// ExpandCanvas returns s with borders of the given widths added, filled
// with c, and s drawn over them. Negative widths trim s instead. The result
// is opaque when s is and c has alpha 255.
func (s *Surface) ExpandCanvas(top, right, bottom, left int, c Color) (*Surface, error) {
	out, err := NewSurfaceFilled(s.width+left+right, s.height+top+bottom, s.opaque && c.A() == 255, c)
	if err != nil {
		return nil, err
	}
	newGraphics(out).DrawTextureAt(s, float64(left), float64(top))
	return out, nil
}

// remap builds a w×h surface whose pixel (x, y) is s's pixel at src(x, y).
func (s *Surface) remap(w, h int, src func(x, y int) (int, int)) *Surface {
	out := blank(w, h, s.opaque)
	for y := 0; y < h; y++ {
		row := out.row(y)
		for x := range row {
			sx, sy := src(x, y)
			row[x] = s.pix[s.offset+sy*s.stride+sx]
		}
	}
	return out
}

// Mirror returns s reflected left to right.
func (s *Surface) Mirror() *Surface {
	return s.remap(s.width, s.height, func(x, y int) (int, int) {
		return s.width - 1 - x, y
	})
}

// Flip returns s reflected top to bottom.
func (s *Surface) Flip() *Surface {
	out := blank(s.width, s.height, s.opaque)
	for y := 0; y < s.height; y++ {
		copy(out.row(y), s.row(s.height-1-y))
	}
	return out
}

// RotateLeft returns s turned 90 degrees counter-clockwise.
func (s *Surface) RotateLeft() *Surface {
	return s.remap(s.height, s.width, func(x, y int) (int, int) {
		return s.width - 1 - y, x
	})
}

// RotateRight returns s turned 90 degrees clockwise.
func (s *Surface) RotateRight() *Surface {
	return s.remap(s.height, s.width, func(x, y int) (int, int) {
		return y, s.height - 1 - x
	})
}

// Rotate180 returns s turned half a turn.
func (s *Surface) Rotate180() *Surface {
	return s.remap(s.width, s.height, func(x, y int) (int, int) {
		return s.width - 1 - x, s.height - 1 - y
	})
}

// Rotate returns s turned by angle radians about its centre. With fit set
// the result grows to hold the whole turned image; otherwise it keeps s's
// size. The uncovered corners of an opaque result are black.
func (s *Surface) Rotate(angle float64, fit bool) (*Surface, error) {
	w, h := s.width, s.height
	if fit {
		sin, cos := math.Sincos(angle)
		fw, fh := float64(w), float64(h)
		// trim rounding noise so quarter turns keep exact sizes
		w = int(math.Ceil(math.Abs(fw*cos)+math.Abs(fh*sin)-1e-9))
		h = int(math.Ceil(math.Abs(fw*sin)+math.Abs(fh*cos)-1e-9))
	}
	out, err := NewSurface(w, h, s.opaque)
	if err != nil {
		return nil, err
	}
	g := newGraphics(out, WithBlendMode(BlendSrc))
	g.DrawRotatedTexture(s, float64(w-s.width)/2, float64(h-s.height)/2,
		float64(s.width), float64(s.height), angle)
	return out, nil
}

// Scale returns s resampled to w×h with bilinear filtering and hard edges.
// Sizes below one become one.
func (s *Surface) Scale(w, h int) *Surface {
	w, h = max(w, 1), max(h, 1)
	out := blank(w, h, s.opaque)
	g := newGraphics(out, WithBlendMode(BlendSrc))
	g.SetEdgeClamp(EdgeClampAll)
	g.DrawScaledTexture(s, 0, 0, float64(w), float64(h))
	return out
}

// ScaleBy returns s resampled by factor f, sizes rounded to the nearest
// pixel.
func (s *Surface) ScaleBy(f float64) *Surface {
	return s.Scale(int(math.Round(f*float64(s.width))), int(math.Round(f*float64(s.height))))
}

// HalfSize returns s reduced to half its size by averaging each 2×2 block.
// An odd last row or column is dropped.
func (s *Surface) HalfSize() (*Surface, error) {
	w, h := s.width/2, s.height/2
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: half of %dx%d", ErrInvalidDimensions, s.width, s.height)
	}
	out := blank(w, h, s.opaque)
	for y := 0; y < h; y++ {
		top, bottom := s.row(2*y), s.row(2*y+1)
		row := out.row(y)
		for x := range row {
			row[x] = average4(top[2*x], top[2*x+1], bottom[2*x], bottom[2*x+1])
		}
	}
	return out, nil
}

// average4 rounds the mean of four premultiplied pixels per channel, which
// keeps the result premultiplied.
func average4(p1, p2, p3, p4 uint32) uint32 {
	var out uint32
	for shift := 0; shift < 32; shift += 8 {
		sum := p1>>shift&0xff + p2>>shift&0xff + p3>>shift&0xff + p4>>shift&0xff
		out |= (sum + 2) >> 2 << shift
	}
	return out
}

// Tint returns s with every pixel's colour replaced by c. Each pixel keeps
// its shape: its alpha becomes the old alpha scaled by c's alpha.
func (s *Surface) Tint(c Color) *Surface {
	tint := c.Premultiplied()
	out := blank(s.width, s.height, s.opaque && c.A() == 255)
	for y := 0; y < s.height; y++ {
		dst := out.row(y)
		for x, p := range s.row(y) {
			dst[x] = blend.Scale(tint, uint8(intColor.Alpha(p)))
		}
	}
	return out
}

// Background returns s composited over a solid c. The result is opaque
// when s is or c has alpha 255.
func (s *Surface) Background(c Color) *Surface {
	opaque := s.opaque || c.A() == 255
	out := blank(s.width, s.height, opaque)
	p := c.Premultiplied()
	if opaque {
		p |= 0xff000000
	}
	fill(out.pix, p)
	newGraphics(out).DrawTexture(s)
	return out
}

// Fade returns s with its alpha scaled by alpha, clamped to 0-255. The
// result is opaque only when s is and alpha is 255.
func (s *Surface) Fade(alpha int) *Surface {
	a := uint8(clampByte(alpha))
	out := blank(s.width, s.height, s.opaque && a == 255)
	for y := 0; y < s.height; y++ {
		dst := out.row(y)
		for x, p := range s.row(y) {
			dst[x] = blend.Scale(p, a)
		}
	}
	return out
}
