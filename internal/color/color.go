// Package color implements pixel-level colour arithmetic for softgfx.
//
// Pixels are packed into uint32 values. The canonical in-memory layout is
// ARGB (alpha in the high byte, blue in the low byte) with premultiplied
// colour channels; the other layouts exist only at import/export boundaries.
package color

// Channel shifts in the ARGB layout.
const (
	ShiftA = 24
	ShiftR = 16
	ShiftG = 8
	ShiftB = 0
)

// Pack builds an ARGB pixel from four channel values.
func Pack(a, r, g, b uint32) uint32 {
	return a<<ShiftA | r<<ShiftR | g<<ShiftG | b<<ShiftB
}

// Unpack splits an ARGB pixel into its channel values.
func Unpack(p uint32) (a, r, g, b uint32) {
	return p >> ShiftA, (p >> ShiftR) & 0xff, (p >> ShiftG) & 0xff, p & 0xff
}

// Alpha returns the alpha channel of an ARGB pixel.
func Alpha(p uint32) uint32 {
	return p >> ShiftA
}

// Premultiply converts a straight ARGB pixel to premultiplied ARGB.
// Each colour channel becomes (c*a+127)/255, so alpha 255 is exact and
// alpha 0 yields transparent black.
func Premultiply(p uint32) uint32 {
	a := p >> ShiftA
	switch a {
	case 0xff:
		return p
	case 0:
		return 0
	}
	r := ((p>>ShiftR)&0xff*a + 127) / 255
	g := ((p>>ShiftG)&0xff*a + 127) / 255
	b := (p&0xff*a + 127) / 255
	return Pack(a, r, g, b)
}

// Unpremultiply converts a premultiplied ARGB pixel back to straight ARGB.
// Channels are rounded to nearest and clamped to 255, which also repairs
// invalid pixels whose colour exceeds their alpha.
func Unpremultiply(p uint32) uint32 {
	a := p >> ShiftA
	switch a {
	case 0xff:
		return p
	case 0:
		return 0
	}
	half := a >> 1
	r := min(((p>>ShiftR)&0xff*255+half)/a, 255)
	g := min(((p>>ShiftG)&0xff*255+half)/a, 255)
	b := min((p&0xff*255+half)/a, 255)
	return Pack(a, r, g, b)
}

// ToRGBA moves the alpha byte of an ARGB pixel to the low byte.
func ToRGBA(p uint32) uint32 {
	return p<<8 | p>>24
}

// FromRGBA moves the alpha byte of an RGBA pixel to the high byte.
func FromRGBA(p uint32) uint32 {
	return p>>8 | p<<24
}
