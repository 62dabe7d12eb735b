package blend

import (
	"fmt"

	"github.com/gogpu/softgfx/internal/color"
)

// Op is a compositing operator.
type Op uint8

const (
	Clear    Op = iota // Result: 0
	Src                // Result: S
	Dst                // Result: D
	SrcOver            // Result: S + D*(1-Sa)
	SrcIn              // Result: S*Da
	SrcAtop            // Result: S*Da + D*(1-Sa)
	SrcOut             // Result: S*(1-Da)
	DstOver            // Result: S*(1-Da) + D
	DstIn              // Result: D*Sa
	DstAtop            // Result: S*(1-Da) + D*Sa
	DstOut             // Result: D*(1-Sa)
	Add                // Result: S + D (clamped)
	Multiply           // Result: D*(S + 1 - Sa), alpha Da

	numOps
)

var opNames = [numOps]string{
	"Clear", "Src", "Dst", "SrcOver", "SrcIn", "SrcAtop", "SrcOut",
	"DstOver", "DstIn", "DstAtop", "DstOut", "Add", "Multiply",
}

// String returns the operator name.
func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Valid reports whether op is a known operator.
func (op Op) Valid() bool {
	return op < numOps
}

// Compositor applies one operator to pixels. It is selected once per draw
// call; the per-pixel path carries no mode dispatch beyond a function call.
type Compositor struct {
	op     Op
	opaque bool
	k      kernel
	// fold is set when a transparent source leaves the destination
	// unchanged; coverage can then scale the source instead of lerping.
	fold bool
}

// New returns the compositor for op. When opaqueDst is set the destination
// is assumed to hold alpha 255 everywhere and results keep it that way.
// New panics if op is not a known operator.
func New(op Op, opaqueDst bool) Compositor {
	c := Compositor{op: op, opaque: opaqueDst}
	switch op {
	case Clear:
		c.k = pick(opaqueDst, clearPixel, clearOpaque)
	case Src:
		c.k = pick(opaqueDst, source, sourceOpaque)
	case Dst:
		c.k = destination
	case SrcOver:
		c.k = pick(opaqueDst, sourceOver, sourceOverOpaque)
		c.fold = true
	case SrcIn:
		c.k = pick(opaqueDst, sourceIn, sourceOpaque)
	case SrcAtop:
		c.k = pick(opaqueDst, sourceAtop, sourceOverOpaque)
		c.fold = true
	case SrcOut:
		c.k = pick(opaqueDst, sourceOut, sourceOutOpaque)
	case DstOver:
		c.k = pick(opaqueDst, destinationOver, destination)
		c.fold = true
	case DstIn:
		c.k = pick(opaqueDst, destinationIn, destinationInOpaque)
	case DstAtop:
		c.k = pick(opaqueDst, destinationAtop, destinationInOpaque)
	case DstOut:
		c.k = pick(opaqueDst, destinationOut, destinationOutOpaque)
		c.fold = true
	case Add:
		c.k = pick(opaqueDst, add, addOpaque)
		c.fold = true
	case Multiply:
		c.k = pick(opaqueDst, multiply, multiplyOpaque)
		c.fold = true
	default:
		panic(fmt.Sprintf("blend: unknown operator %d", uint8(op)))
	}
	return c
}

func pick(opaque bool, general, opaqueDst kernel) kernel {
	if opaque {
		return opaqueDst
	}
	return general
}

// Op returns the operator.
func (c Compositor) Op() Op { return c.op }

// OpaqueDst reports whether the compositor targets an opaque destination.
func (c Compositor) OpaqueDst() bool { return c.opaque }

// SkipsTransparent reports whether a fully transparent source leaves the
// destination untouched, so callers may skip such pixels entirely.
func (c Compositor) SkipsTransparent() bool { return c.fold }

// Apply returns the composite of s onto d without writing anything.
func (c Compositor) Apply(s, d uint32) uint32 {
	return c.k(s, d)
}

// Pixel composites s onto *dst at full coverage.
func (c Compositor) Pixel(dst *uint32, s uint32) {
	if c.fold && s == 0 {
		return
	}
	*dst = c.k(s, *dst)
}

// PixelAlpha composites s onto *dst at the given coverage.
func (c Compositor) PixelAlpha(dst *uint32, s uint32, coverage uint8) {
	switch {
	case coverage == 0:
		return
	case coverage == 255:
		c.Pixel(dst, s)
	case c.fold:
		if s != 0 {
			*dst = c.k(scale(s, uint32(coverage)), *dst)
		}
	default:
		d := *dst
		*dst = lerp(d, c.k(s, d), uint32(coverage))
	}
}

// Run composites the same source colour onto every pixel of dst at the
// given coverage.
func (c Compositor) Run(dst []uint32, s uint32, coverage uint8) {
	if coverage == 0 {
		return
	}
	if coverage == 255 {
		if v, ok := c.constant(s); ok {
			for i := range dst {
				dst[i] = v
			}
			return
		}
	}
	if c.fold {
		s = scale(s, uint32(coverage))
		if s == 0 {
			return
		}
		for i, d := range dst {
			dst[i] = c.k(s, d)
		}
		return
	}
	if coverage == 255 {
		for i, d := range dst {
			dst[i] = c.k(s, d)
		}
		return
	}
	cv := uint32(coverage)
	for i, d := range dst {
		dst[i] = lerp(d, c.k(s, d), cv)
	}
}

// constant reports the result when compositing s is independent of the
// destination pixel.
func (c Compositor) constant(s uint32) (uint32, bool) {
	switch c.op {
	case Clear, Src:
		return c.k(s, 0), true
	case SrcOver:
		if color.Alpha(s) == 255 {
			return s, true
		}
	case SrcIn, SrcOut:
		if c.opaque {
			return c.k(s, opaqueAlpha), true
		}
	}
	return 0, false
}

// Span composites src onto dst pixel by pixel, with every source pixel
// first scaled by alpha. dst and src must have the same length.
func (c Compositor) Span(dst, src []uint32, alpha uint8) {
	if alpha == 0 && c.fold {
		return
	}
	a := uint32(alpha)
	src = src[:len(dst)]
	if c.fold {
		for i, s := range src {
			if s == 0 {
				continue
			}
			dst[i] = c.k(scale(s, a), dst[i])
		}
		return
	}
	for i, s := range src {
		dst[i] = c.k(scale(s, a), dst[i])
	}
}

// Scale multiplies every channel of the premultiplied pixel p by f/255.
func Scale(p uint32, f uint8) uint32 {
	return scale(p, uint32(f))
}
