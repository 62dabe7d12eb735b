package blend

import "github.com/gogpu/softgfx/internal/color"

// kernel composites one premultiplied source pixel onto one destination pixel.
type kernel func(s, d uint32) uint32

const opaqueAlpha = 0xff000000

func clearPixel(_, _ uint32) uint32 { return 0 }

func source(s, _ uint32) uint32 { return s }

func destination(_, d uint32) uint32 { return d }

// S + D*(1-Sa)
func sourceOver(s, d uint32) uint32 {
	sa, sr, sg, sb := color.Unpack(s)
	if sa == 255 {
		return s
	}
	da, dr, dg, db := color.Unpack(d)
	isa := 255 - sa
	return color.Pack(
		addClamp(sa, mul255(da, isa)),
		addClamp(sr, mul255(dr, isa)),
		addClamp(sg, mul255(dg, isa)),
		addClamp(sb, mul255(db, isa)),
	)
}

// S*Da
func sourceIn(s, d uint32) uint32 {
	return scale(s, color.Alpha(d))
}

// S*Da + D*(1-Sa)
func sourceAtop(s, d uint32) uint32 {
	sa, sr, sg, sb := color.Unpack(s)
	da, dr, dg, db := color.Unpack(d)
	isa := 255 - sa
	return color.Pack(
		da,
		addClamp(mul255(sr, da), mul255(dr, isa)),
		addClamp(mul255(sg, da), mul255(dg, isa)),
		addClamp(mul255(sb, da), mul255(db, isa)),
	)
}

// S*(1-Da)
func sourceOut(s, d uint32) uint32 {
	return scale(s, 255-color.Alpha(d))
}

// S*(1-Da) + D
func destinationOver(s, d uint32) uint32 {
	da := color.Alpha(d)
	if da == 255 {
		return d
	}
	return addPixels(scale(s, 255-da), d)
}

// D*Sa
func destinationIn(s, d uint32) uint32 {
	return scale(d, color.Alpha(s))
}

// S*(1-Da) + D*Sa
func destinationAtop(s, d uint32) uint32 {
	sa := color.Alpha(s)
	da := color.Alpha(d)
	out := addPixels(scale(s, 255-da), scale(d, sa))
	return out&^opaqueAlpha | sa<<color.ShiftA
}

// D*(1-Sa)
func destinationOut(s, d uint32) uint32 {
	return scale(d, 255-color.Alpha(s))
}

// min(S + D, 1)
func add(s, d uint32) uint32 {
	return addPixels(s, d)
}

// D*(S + 1 - Sa), alpha Da
func multiply(s, d uint32) uint32 {
	sa, sr, sg, sb := color.Unpack(s)
	da, dr, dg, db := color.Unpack(d)
	isa := 255 - sa
	return color.Pack(
		da,
		mul255(dr, min(sr+isa, 255)),
		mul255(dg, min(sg+isa, 255)),
		mul255(db, min(sb+isa, 255)),
	)
}

func addPixels(s, d uint32) uint32 {
	sa, sr, sg, sb := color.Unpack(s)
	da, dr, dg, db := color.Unpack(d)
	return color.Pack(addClamp(sa, da), addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db))
}

// Opaque-destination kernels. The destination alpha is 255 on entry and
// stays 255 on exit, so every term in (1-Da) vanishes.

func clearOpaque(_, _ uint32) uint32 { return opaqueAlpha }

func sourceOpaque(s, _ uint32) uint32 { return s | opaqueAlpha }

func sourceOverOpaque(s, d uint32) uint32 {
	sa, sr, sg, sb := color.Unpack(s)
	switch sa {
	case 255:
		return s
	case 0:
		return d
	}
	_, dr, dg, db := color.Unpack(d)
	isa := 255 - sa
	return color.Pack(
		255,
		addClamp(sr, mul255(dr, isa)),
		addClamp(sg, mul255(dg, isa)),
		addClamp(sb, mul255(db, isa)),
	)
}

func sourceOutOpaque(_, _ uint32) uint32 { return opaqueAlpha }

func destinationInOpaque(s, d uint32) uint32 {
	return scale(d, color.Alpha(s)) | opaqueAlpha
}

func destinationOutOpaque(s, d uint32) uint32 {
	return scale(d, 255-color.Alpha(s)) | opaqueAlpha
}

func addOpaque(s, d uint32) uint32 {
	return addPixels(s, d) | opaqueAlpha
}

func multiplyOpaque(s, d uint32) uint32 {
	return multiply(s, d) | opaqueAlpha
}
