package filter

import (
	"fmt"

	"github.com/gogpu/softgfx"
	"github.com/gogpu/softgfx/internal/blend"
)

// ReflectionFade divides the starting alpha of a reflection's gradient.
type ReflectionFade uint8

// Reflection fades.
const (
	FadeNone   ReflectionFade = iota // starts at full alpha
	FadeByTwo                        // starts at half alpha
	FadeByFour                       // starts at quarter alpha
)

// Reflection appends a mirrored copy of a surface's bottom rows below it,
// fading out linearly with distance from the source.
type Reflection struct {
	// Height is the number of mirrored rows. It is capped at the source
	// height.
	Height int

	// Gap is the number of transparent rows between the source and its
	// reflection.
	Gap int

	Fade ReflectionFade
}

// NewReflection returns a reflection of the given height, one row below
// its source, starting at half alpha.
func NewReflection(height int) *Reflection {
	return &Reflection{Height: height, Gap: 1, Fade: FadeByTwo}
}

// Apply returns a new non-opaque surface holding src with its reflection
// underneath. The result is as wide as src and Gap plus the reflected
// rows taller.
func (f *Reflection) Apply(src *softgfx.Surface) (*softgfx.Surface, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil surface", softgfx.ErrInvalidDimensions)
	}
	if f.Height < 0 || f.Gap < 0 {
		return nil, fmt.Errorf("%w: reflection height %d, gap %d", softgfx.ErrInvalidDimensions, f.Height, f.Gap)
	}
	w, h := src.Width(), src.Height()
	rh := min(f.Height, h)
	out, err := softgfx.NewSurface(w, h+f.Gap+rh, false)
	if err != nil {
		return nil, err
	}
	pix, stride := out.Pix(), out.Stride()
	var row []uint32
	for y := 0; y < h; y++ {
		row = src.ReadRow(y, row)
		copy(pix[y*stride:], row)
	}
	for i := 0; i < rh; i++ {
		row = src.ReadRow(h-1-i, row)
		a := uint8((255 - i*255/rh) >> f.Fade)
		dst := pix[(h+f.Gap+i)*stride:]
		for x, p := range row {
			dst[x] = blend.Scale(p, a)
		}
	}
	return out, nil
}
