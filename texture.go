package softgfx

import (
	"math"

	"github.com/gogpu/softgfx/fixed"
	intImage "github.com/gogpu/softgfx/internal/image"
	"github.com/gogpu/softgfx/internal/raster"
)

// DrawTexture draws tex with its top-left corner at the user-space origin,
// using the current transform, alpha, blend mode, interpolation and edge
// clamp.
//
// Integer translations copy or composite whole rows. Scales and fractional
// translations resample along the axes. Rotations and shears scan the
// transformed quad row by row and step through the texture with the
// inverse transform. Zero or negative scales and singular transforms draw
// nothing.
func (g *Graphics) DrawTexture(tex *Surface) {
	g.drawTexture(tex, g.top(), g.edgeClamp)
}

// DrawTextureAt draws tex with its top-left corner at (x, y) in user space.
func (g *Graphics) DrawTextureAt(tex *Surface, x, y float64) {
	g.drawTexture(tex, g.top().Translate(x, y), g.edgeClamp)
}

// DrawScaledTexture draws tex stretched over the w×h rectangle at (x, y) in
// user space. Non-positive sizes draw nothing.
func (g *Graphics) DrawScaledTexture(tex *Surface, x, y, w, h float64) {
	if tex == nil || !(w > 0) || !(h > 0) {
		return
	}
	t := g.top().Translate(x, y).Scale(w/float64(tex.width), h/float64(tex.height))
	g.drawTexture(tex, t, g.edgeClamp)
}

// DrawRotatedTexture draws tex stretched over the w×h rectangle at (x, y)
// and turned by angle radians about the rectangle's centre.
func (g *Graphics) DrawRotatedTexture(tex *Surface, x, y, w, h, angle float64) {
	if tex == nil || !(w > 0) || !(h > 0) {
		return
	}
	tw, th := float64(tex.width), float64(tex.height)
	t := g.top().Translate(x, y).Scale(w/tw, h/th).RotateAbout(angle, tw/2, th/2)
	g.drawTexture(tex, t, g.edgeClamp)
}

// DrawTextureRegion draws the sw×sh region of tex at (sx, sy) with its
// top-left corner at (x, y) in user space. Sampling stays inside the
// region. A region outside tex draws nothing.
func (g *Graphics) DrawTextureRegion(tex *Surface, x, y float64, sx, sy, sw, sh int) {
	if tex == nil {
		return
	}
	region, err := tex.SubSurface(sx, sy, sw, sh)
	if err != nil {
		g.skipped("DrawTextureRegion", err.Error())
		return
	}
	g.drawTexture(region, g.top().Translate(x, y), g.edgeClamp)
}

func (g *Graphics) drawTexture(tex *Surface, t Transform, clamp EdgeClamp) {
	if tex == nil {
		return
	}
	if det := t.Determinant(); det == 0 || math.IsNaN(det) {
		g.skipped("DrawTexture", "singular transform")
		return
	}
	g.prepare()
	if g.blendMode == BlendDst || (g.alpha == 0 && g.comp.SkipsTransparent()) || g.clip.Empty() {
		return
	}
	typ := t.Type()
	switch {
	case typ&TypeRotate != 0 || !(t.scaleX > 0) || !(t.scaleY > 0):
		// mirrored axes take the general affine path
		g.blitRotated(tex, t, clamp)
	case typ&TypeScale == 0 && isIntegral(t.translateX) && isIntegral(t.translateY):
		g.blitIdentity(tex, fixed.FromFloat(t.translateX).Floor(), fixed.FromFloat(t.translateY).Floor())
	default:
		g.blitScaled(tex, t, clamp)
	}
}

func isIntegral(v float64) bool {
	return fixed.FromFloat(v).Frac() == 0 && math.Abs(v) < 32768
}

// blitIdentity draws tex unscaled at device pixel (tx, ty).
func (g *Graphics) blitIdentity(tex *Surface, tx, ty int) {
	r := raster.Rect{MinX: tx, MinY: ty, MaxX: tx + tex.width, MaxY: ty + tex.height}
	r = r.Intersect(g.clip)
	if r.Empty() {
		return
	}
	rawCopy := g.alpha == 255 &&
		((g.blendMode == BlendSrc && (tex.opaque || !g.surface.opaque)) ||
			(g.blendMode == BlendSrcOver && tex.opaque))
	for py := r.MinY; py < r.MaxY; py++ {
		src := tex.row(py - ty)[r.MinX-tx : r.MaxX-tx]
		dst := g.surface.row(py)[r.MinX:r.MaxX]
		if rawCopy {
			copy(dst, src)
		} else {
			g.comp.Span(dst, src, g.alpha)
		}
	}
}

// blitScaled draws tex under an axis-aligned scale and translation. The
// device bounds are computed in float64 and saturated to the clip, so
// translations and extents beyond the fixed-point range stay correct.
func (g *Graphics) blitScaled(tex *Surface, t Transform, clamp EdgeClamp) {
	if !(t.scaleX > 0) || !(t.scaleY > 0) {
		g.skipped("DrawTexture", "zero or negative scale")
		return
	}
	if tex.opaque {
		clamp = EdgeClampAll
	}
	w, h := float64(tex.width), float64(tex.height)
	left, top := t.translateX, t.translateY
	right, bottom := left+t.scaleX*w, top+t.scaleY*h
	if !finite(left, top, right, bottom) || !(right > left) || !(bottom > top) {
		g.skipped("DrawTexture", "zero or negative scale")
		return
	}
	du, dv := w/(right-left), h/(bottom-top)

	var x0, y0, x1, y1 float64
	if g.interpolation == NearestNeighbor {
		// Snap the bounds to the pixel grid and stretch the texture to fit.
		x0, x1 = roundHalfUp(left), roundHalfUp(right)
		y0, y1 = roundHalfUp(top), roundHalfUp(bottom)
		if x1 <= x0 || y1 <= y0 {
			return
		}
		left, top = x0, y0
		du, dv = w/(x1-x0), h/(y1-y0)
	} else {
		// Hard edges end on the nearest pixel boundary; soft edges keep
		// every partially covered pixel for the sampler to fade.
		x0 = edgeStart(left, clamp&EdgeClampLeft != 0)
		y0 = edgeStart(top, clamp&EdgeClampTop != 0)
		x1 = edgeEnd(right, clamp&EdgeClampRight != 0)
		y1 = edgeEnd(bottom, clamp&EdgeClampBottom != 0)
	}
	r := g.deviceRect(x0, y0, x1, y1)
	if r.Empty() {
		return
	}

	sampler := intImage.NewSampler(tex.buf(), intImage.EdgeClamp(clamp))
	mode := intImage.Interpolation(g.interpolation)
	n := r.MaxX - r.MinX
	fdu, fdv := fixed.FromFloat(du), fixed.FromFloat(dv)
	u0 := fixed.FromFloat((float64(r.MinX) + 0.5 - left) * du)
	v := fixed.FromFloat((float64(r.MinY) + 0.5 - top) * dv)
	for py := r.MinY; py < r.MaxY; py++ {
		span := g.span(n)
		u := u0
		for i := range span {
			span[i] = sampler.Sample(mode, u, v)
			u += fdu
		}
		g.comp.Span(g.surface.row(py)[r.MinX:r.MaxX], span, g.alpha)
		v += fdv
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func edgeStart(v float64, hard bool) float64 {
	if hard {
		return roundHalfUp(v)
	}
	return math.Floor(v)
}

func edgeEnd(v float64, hard bool) float64 {
	if hard {
		return roundHalfUp(v)
	}
	return math.Ceil(v)
}

// deviceRect converts integral float bounds to pixels, saturated to the clip.
func (g *Graphics) deviceRect(x0, y0, x1, y1 float64) raster.Rect {
	c := g.clip
	return raster.Rect{
		MinX: saturate(x0, c.MinX, c.MaxX),
		MinY: saturate(y0, c.MinY, c.MaxY),
		MaxX: saturate(x1, c.MinX, c.MaxX),
		MaxY: saturate(y1, c.MinY, c.MaxY),
	}
}

func saturate(v float64, lo, hi int) int {
	switch {
	case !(v > float64(lo)):
		return lo
	case v >= float64(hi):
		return hi
	}
	return int(v)
}

// blitRotated draws tex under any invertible affine transform, including
// rotation, shear and mirrored axes.
func (g *Graphics) blitRotated(tex *Surface, t Transform, clamp EdgeClamp) {
	inv, ok := t.Invert()
	if !ok {
		g.skipped("DrawTexture", "singular transform")
		return
	}
	w, h := float64(tex.width), float64(tex.height)

	// Soft bilinear edges grow by one pixel's footprint in the texture so
	// the sampler can fade them out.
	u0, u1, v0, v1 := 0.0, w, 0.0, h
	if g.interpolation == Bilinear {
		ud := math.Max(math.Abs(inv.scaleX), math.Abs(inv.shearX))
		vd := math.Max(math.Abs(inv.shearY), math.Abs(inv.scaleY))
		if clamp&EdgeClampLeft == 0 {
			u0 -= ud
		}
		if clamp&EdgeClampRight == 0 {
			u1 += ud
		}
		if clamp&EdgeClampTop == 0 {
			v0 -= vd
		}
		if clamp&EdgeClampBottom == 0 {
			v1 += vd
		}
	}
	q := g.quad(t, u0, v0, u1, v1)
	r := q.Bounds(1).Intersect(g.clip)
	if r.Empty() {
		return
	}

	sampler := intImage.NewSampler(tex.buf(), intImage.EdgeClamp(clamp))
	mode := intImage.Interpolation(g.interpolation)
	duX := fixed.FromFloat(inv.scaleX)
	dvX := fixed.FromFloat(inv.shearY)
	for py := r.MinY; py < r.MaxY; py++ {
		lo, hi, ok := q.Span(fixed.FromInt(py) + fixed.Half)
		if !ok {
			continue
		}
		lo = fixed.Max(lo, fixed.FromInt(r.MinX))
		hi = fixed.Max(fixed.Min(hi, fixed.FromInt(r.MaxX)), lo)
		xs := (lo - fixed.Half).Ceil()
		xe := (hi - fixed.Half).Ceil()
		if xs >= xe {
			continue
		}
		fu, fv := inv.TransformPoint(float64(xs)+0.5, float64(py)+0.5)
		u, v := fixed.FromFloat(fu), fixed.FromFloat(fv)
		span := g.span(xe - xs)
		for i := range span {
			span[i] = sampler.Sample(mode, u, v)
			u += duX
			v += dvX
		}
		g.comp.Span(g.surface.row(py)[xs:xe], span, g.alpha)
	}
}
