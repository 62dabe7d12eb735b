package filter

import (
	"fmt"
	"math"

	"github.com/gogpu/softgfx"
	intColor "github.com/gogpu/softgfx/internal/color"
)

// ColorMatrix transforms every pixel by a 4×5 matrix over straight
// (non-premultiplied) channels in the 0-255 range:
//
//	[R']   [m0  m1  m2  m3  m4 ]   [R]
//	[G'] = [m5  m6  m7  m8  m9 ] * [G]
//	[B']   [m10 m11 m12 m13 m14]   [B]
//	[A']   [m15 m16 m17 m18 m19]   [A]
//	                               [1]
type ColorMatrix [20]float32

// Rec. 709 luminance weights.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// IdentityMatrix leaves pixels unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Brightness scales the colour channels: 0 is black, 1 unchanged.
func Brightness(f float32) ColorMatrix {
	return ColorMatrix{
		f, 0, 0, 0, 0,
		0, f, 0, 0, 0,
		0, 0, f, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Contrast scales the colour channels around mid-gray: 0 is flat gray,
// 1 unchanged.
func Contrast(f float32) ColorMatrix {
	off := 128 * (1 - f)
	return ColorMatrix{
		f, 0, 0, 0, off,
		0, f, 0, 0, off,
		0, 0, f, 0, off,
		0, 0, 0, 1, 0,
	}
}

// Saturation blends between luminance (0) and the original colour (1).
func Saturation(f float32) ColorMatrix {
	i := 1 - f
	return ColorMatrix{
		lumR*i + f, lumG * i, lumB * i, 0, 0,
		lumR * i, lumG*i + f, lumB * i, 0, 0,
		lumR * i, lumG * i, lumB*i + f, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Grayscale replaces colour with its luminance.
func Grayscale() ColorMatrix {
	return Saturation(0)
}

// Invert inverts the colour channels.
func Invert() ColorMatrix {
	return ColorMatrix{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}
}

// Opacity scales alpha.
func Opacity(f float32) ColorMatrix {
	m := IdentityMatrix()
	m[18] = f
	return m
}

// HueRotate rotates hue by the given angle in radians, keeping luminance.
func HueRotate(angle float64) ColorMatrix {
	c, s := float32(math.Cos(angle)), float32(math.Sin(angle))
	return ColorMatrix{
		lumR + c*(1-lumR) - s*lumR, lumG - c*lumG - s*lumG, lumB - c*lumB + s*(1-lumB), 0, 0,
		lumR - c*lumR + s*0.143, lumG + c*(1-lumG) + s*0.140, lumB - c*lumB - s*0.283, 0, 0,
		lumR - c*lumR - s*(1-lumR), lumG - c*lumG + s*lumG, lumB + c*(1-lumB) + s*lumB, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Then returns the matrix that applies m and then next.
func (m ColorMatrix) Then(next ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += next[row*5+k] * m[k*5+col]
			}
			if col == 4 {
				sum += next[row*5+4]
			}
			r[row*5+col] = sum
		}
	}
	return r
}

// Apply writes the transformed pixels of src to dst. dst and src may be
// the same surface. An opaque destination keeps full alpha.
func (m ColorMatrix) Apply(dst, src *softgfx.Surface) error {
	if dst == nil || src == nil {
		return fmt.Errorf("%w: nil surface", softgfx.ErrInvalidDimensions)
	}
	if !dst.IsMutable() {
		return softgfx.ErrImmutableSurface
	}
	w, h := src.Width(), src.Height()
	if dst.Width() != w || dst.Height() != h {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrSizeMismatch, w, h, dst.Width(), dst.Height())
	}
	opaque := dst.IsOpaque()
	pix, stride := dst.Pix(), dst.Stride()
	var row []uint32
	for y := 0; y < h; y++ {
		row = src.ReadRow(y, row)
		out := pix[y*stride : y*stride+w]
		for x, p := range row {
			out[x] = m.pixel(p, opaque)
		}
	}
	return nil
}

func (m *ColorMatrix) pixel(p uint32, opaque bool) uint32 {
	a, r, g, b := intColor.Unpack(intColor.Unpremultiply(p))
	fa, fr, fg, fb := float32(a), float32(r), float32(g), float32(b)
	nr := m[0]*fr + m[1]*fg + m[2]*fb + m[3]*fa + m[4]
	ng := m[5]*fr + m[6]*fg + m[7]*fb + m[8]*fa + m[9]
	nb := m[10]*fr + m[11]*fg + m[12]*fb + m[13]*fa + m[14]
	na := m[15]*fr + m[16]*fg + m[17]*fb + m[18]*fa + m[19]
	if opaque {
		na = 255
	}
	return intColor.Premultiply(intColor.Pack(channel(na), channel(nr), channel(ng), channel(nb)))
}

func channel(v float32) uint32 {
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	}
	return uint32(v + 0.5)
}
