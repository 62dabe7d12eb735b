package image

import "github.com/gogpu/softgfx/fixed"

// Interpolation selects how texels are reconstructed between samples.
type Interpolation uint8

const (
	// Nearest picks the texel containing the sample point.
	Nearest Interpolation = iota
	// Bilinear blends the four texels around the sample point.
	Bilinear
)

// String returns a string representation of the interpolation mode.
func (m Interpolation) String() string {
	switch m {
	case Nearest:
		return "Nearest"
	case Bilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// EdgeClamp is a bit set of texture edges that extend their border texel
// outward. An edge that is not clamped fades to transparent.
type EdgeClamp uint8

const (
	ClampNone   EdgeClamp = 0
	ClampLeft   EdgeClamp = 1
	ClampRight  EdgeClamp = 2
	ClampBottom EdgeClamp = 4
	ClampTop    EdgeClamp = 8
	ClampAll    EdgeClamp = ClampLeft | ClampRight | ClampBottom | ClampTop
)

// Sampler reads texels from a Buf in 16.16 texel coordinates, where texel
// i spans [i, i+1).
type Sampler struct {
	buf   Buf
	clamp EdgeClamp
}

// NewSampler returns a sampler over buf with the given clamped edges.
func NewSampler(buf Buf, clamp EdgeClamp) Sampler {
	return Sampler{buf: buf, clamp: clamp & ClampAll}
}

// Sample dispatches on the interpolation mode.
func (s Sampler) Sample(mode Interpolation, u, v fixed.Fixed) uint32 {
	if mode == Nearest {
		return s.Nearest(u, v)
	}
	return s.Bilinear(u-fixed.Half, v-fixed.Half)
}

// Nearest returns the texel containing (u, v), with the index clamped into
// the texture.
func (s Sampler) Nearest(u, v fixed.Fixed) uint32 {
	x := clampInt(u.Floor(), 0, s.buf.Width-1)
	y := clampInt(v.Floor(), 0, s.buf.Height-1)
	return s.buf.At(x, y)
}

// Bilinear blends the 2×2 texels whose top-left texel is (floor(u),
// floor(v)), weighted by the fractional parts. Callers sampling at texel
// centres subtract one half first. Equal neighbours reproduce exactly.
func (s Sampler) Bilinear(u, v fixed.Fixed) uint32 {
	x0 := u.Floor()
	y0 := v.Floor()
	fx := uint32(u.Frac() >> 8)
	fy := uint32(v.Frac() >> 8)

	if fx == 0 && fy == 0 {
		return s.texel(x0, y0)
	}
	p00 := s.texel(x0, y0)
	p10 := s.texel(x0+1, y0)
	if fy == 0 {
		return mix(p00, p10, fx)
	}
	p01 := s.texel(x0, y0+1)
	p11 := s.texel(x0+1, y0+1)
	if fx == 0 {
		return mix(p00, p01, fy)
	}
	return mix2(p00, p10, p01, p11, fx, fy)
}

// texel returns the texel at (x, y). Outside the texture a clamped edge
// yields the border texel and an unclamped edge yields transparent.
func (s Sampler) texel(x, y int) uint32 {
	w, h := s.buf.Width, s.buf.Height
	switch {
	case x < 0:
		if s.clamp&ClampLeft == 0 {
			return 0
		}
		x = 0
	case x >= w:
		if s.clamp&ClampRight == 0 {
			return 0
		}
		x = w - 1
	}
	switch {
	case y < 0:
		if s.clamp&ClampTop == 0 {
			return 0
		}
		y = 0
	case y >= h:
		if s.clamp&ClampBottom == 0 {
			return 0
		}
		y = h - 1
	}
	return s.buf.At(x, y)
}

// mix blends two pixels, f in [0, 256).
func mix(a, b, f uint32) uint32 {
	if a == b {
		return a
	}
	g := 256 - f
	var out uint32
	for shift := uint32(0); shift < 32; shift += 8 {
		ca := (a >> shift) & 0xff
		cb := (b >> shift) & 0xff
		out |= ((ca*g + cb*f) >> 8) << shift
	}
	return out
}

func mix2(p00, p10, p01, p11, fx, fy uint32) uint32 {
	if p00 == p10 && p00 == p01 && p00 == p11 {
		return p00
	}
	gx := 256 - fx
	gy := 256 - fy
	var out uint32
	for shift := uint32(0); shift < 32; shift += 8 {
		top := ((p00>>shift)&0xff)*gx + ((p10>>shift)&0xff)*fx
		bot := ((p01>>shift)&0xff)*gx + ((p11>>shift)&0xff)*fx
		out |= ((top*gy + bot*fy) >> 16) << shift
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
