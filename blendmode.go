package softgfx

import (
	"github.com/gogpu/softgfx/internal/blend"
	intImage "github.com/gogpu/softgfx/internal/image"
)

// BlendMode selects how drawn pixels combine with the destination.
// Formulas are on premultiplied colours; S is the source after the global
// alpha is applied, D the destination.
type BlendMode uint8

const (
	BlendClear    BlendMode = BlendMode(blend.Clear)    // 0
	BlendSrc      BlendMode = BlendMode(blend.Src)      // S
	BlendDst      BlendMode = BlendMode(blend.Dst)      // D
	BlendSrcOver  BlendMode = BlendMode(blend.SrcOver)  // S + D*(1-Sa)
	BlendSrcIn    BlendMode = BlendMode(blend.SrcIn)    // S*Da
	BlendSrcAtop  BlendMode = BlendMode(blend.SrcAtop)  // S*Da + D*(1-Sa)
	BlendSrcOut   BlendMode = BlendMode(blend.SrcOut)   // S*(1-Da)
	BlendDstOver  BlendMode = BlendMode(blend.DstOver)  // S*(1-Da) + D
	BlendDstIn    BlendMode = BlendMode(blend.DstIn)    // D*Sa
	BlendDstAtop  BlendMode = BlendMode(blend.DstAtop)  // S*(1-Da) + D*Sa
	BlendDstOut   BlendMode = BlendMode(blend.DstOut)   // D*(1-Sa)
	BlendAdd      BlendMode = BlendMode(blend.Add)      // S + D, clamped
	BlendMultiply BlendMode = BlendMode(blend.Multiply) // D*(S + 1 - Sa), alpha Da
)

// String returns the mode name.
func (m BlendMode) String() string {
	return blend.Op(m).String()
}

// Valid reports whether m is a known blend mode.
func (m BlendMode) Valid() bool {
	return blend.Op(m).Valid()
}

// Interpolation selects texture sampling.
type Interpolation uint8

const (
	// NearestNeighbor picks the texel under each pixel centre.
	NearestNeighbor = Interpolation(intImage.Nearest)
	// Bilinear blends the four nearest texels.
	Bilinear = Interpolation(intImage.Bilinear)
)

// String returns the mode name.
func (i Interpolation) String() string {
	return intImage.Interpolation(i).String()
}

// EdgeClamp marks which edges of a drawn texture are hard. A clamped edge
// repeats its border texels and ends sharply on the pixel grid; an
// unclamped edge is anti-aliased, fading to transparent.
type EdgeClamp uint8

const (
	EdgeClampNone   = EdgeClamp(intImage.ClampNone)
	EdgeClampLeft   = EdgeClamp(intImage.ClampLeft)
	EdgeClampRight  = EdgeClamp(intImage.ClampRight)
	EdgeClampBottom = EdgeClamp(intImage.ClampBottom)
	EdgeClampTop    = EdgeClamp(intImage.ClampTop)
	EdgeClampAll    = EdgeClamp(intImage.ClampAll)
)
