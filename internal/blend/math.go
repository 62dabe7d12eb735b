// Package blend implements the pixel compositor.
//
// All values are premultiplied ARGB packed into uint32, channels 0-255.
// The division by 255 uses Alvy Ray Smith's shift formula so products are
// exactly rounded without a hardware divide.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

import "github.com/gogpu/softgfx/internal/color"

// mul255 returns round(a*b/255) for a, b in [0, 255].
func mul255(a, b uint32) uint32 {
	t := a*b + 128
	return (t + (t >> 8)) >> 8
}

// addClamp adds two channel values and clamps to 255.
func addClamp(a, b uint32) uint32 {
	return min(a+b, 255)
}

// scale multiplies every channel of p, alpha included, by f/255.
func scale(p, f uint32) uint32 {
	switch f {
	case 255:
		return p
	case 0:
		return 0
	}
	a, r, g, b := color.Unpack(p)
	return color.Pack(mul255(a, f), mul255(r, f), mul255(g, f), mul255(b, f))
}

// lerp moves d toward r by c/255 on every channel.
func lerp(d, r, c uint32) uint32 {
	ic := 255 - c
	da, dr, dg, db := color.Unpack(d)
	ra, rr, rg, rb := color.Unpack(r)
	return color.Pack(
		addClamp(mul255(ra, c), mul255(da, ic)),
		addClamp(mul255(rr, c), mul255(dr, ic)),
		addClamp(mul255(rg, c), mul255(dg, ic)),
		addClamp(mul255(rb, c), mul255(db, ic)),
	)
}
