package softgfx

import (
	"image/color"

	intColor "github.com/gogpu/softgfx/internal/color"
)

// Color is a straight (non-premultiplied) 32-bit ARGB colour: alpha in the
// high byte, blue in the low byte.
type Color uint32

// RGB returns an opaque colour. Components are clamped to 0-255.
func RGB(r, g, b int) Color {
	return RGBA(r, g, b, 255)
}

// RGBA returns a colour with alpha. Components are clamped to 0-255.
func RGBA(r, g, b, a int) Color {
	return Color(intColor.Pack(clampByte(a), clampByte(r), clampByte(g), clampByte(b)))
}

// Gray returns an opaque gray of the given level.
func Gray(v int) Color {
	return RGB(v, v, v)
}

// GrayAlpha returns a gray of the given level and alpha.
func GrayAlpha(v, a int) Color {
	return RGBA(v, v, v, a)
}

// Hex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa"; the leading '#' is
// optional. Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	var r, g, b, a uint32
	a = 255
	ok := true
	switch len(hex) {
	case 3:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return Black
	}
	return Color(intColor.Pack(a, r, g, b))
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

func clampByte(v int) uint32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint32(v)
}

// Common colours.
var (
	Transparent = Color(0x00000000)
	Black       = Color(0xff000000)
	White       = Color(0xffffffff)
	Red         = Color(0xffff0000)
	Green       = Color(0xff00ff00)
	Blue        = Color(0xff0000ff)
	Yellow      = Color(0xffffff00)
	Cyan        = Color(0xff00ffff)
	Magenta     = Color(0xffff00ff)
	LightGray   = Color(0xffc0c0c0)
	MidGray     = Color(0xff808080)
	DarkGray    = Color(0xff404040)
)

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha replaced, clamped to 0-255.
func (c Color) WithAlpha(a int) Color {
	return c&0x00ffffff | Color(clampByte(a)<<24)
}

// Premultiplied returns c as a premultiplied ARGB pixel.
func (c Color) Premultiplied() uint32 {
	return intColor.Premultiply(uint32(c))
}

// RGBA implements image/color.Color, returning alpha-premultiplied
// 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	pa, pr, pg, pb := intColor.Unpack(c.Premultiplied())
	return pr * 0x101, pg * 0x101, pb * 0x101, pa * 0x101
}

// ColorFromStd converts any image/color.Color.
func ColorFromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color(intColor.Pack(uint32(n.A), uint32(n.R), uint32(n.G), uint32(n.B)))
}

// Premultiply converts a straight colour to a premultiplied ARGB pixel.
// Each channel becomes (c*a+127)/255.
func Premultiply(c Color) uint32 {
	return intColor.Premultiply(uint32(c))
}

// Unpremultiply converts a premultiplied ARGB pixel to a straight colour.
// Alpha 0 yields transparent black.
func Unpremultiply(p uint32) Color {
	return Color(intColor.Unpremultiply(p))
}

// PixelFormat is a packed 32-bit pixel layout.
type PixelFormat uint8

const (
	// FormatARGB is straight alpha with alpha in the high byte.
	FormatARGB PixelFormat = PixelFormat(intColor.ARGB)
	// FormatRGBA is straight alpha with alpha in the low byte.
	FormatRGBA PixelFormat = PixelFormat(intColor.RGBA)
	// FormatARGBPremultiplied is the surface storage layout.
	FormatARGBPremultiplied PixelFormat = PixelFormat(intColor.ARGBPremultiplied)
	// FormatRGBAPremultiplied is premultiplied with alpha in the low byte.
	FormatRGBAPremultiplied PixelFormat = PixelFormat(intColor.RGBAPremultiplied)
)

// ConvertPixels rewrites pix in place from one layout to another. It does
// not allocate. Unknown formats leave pix unchanged.
func ConvertPixels(from, to PixelFormat, pix []uint32) {
	intColor.Convert(intColor.Format(from), intColor.Format(to), pix)
}
