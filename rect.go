package softgfx

import (
	"math"

	"github.com/gogpu/softgfx/fixed"
	"github.com/gogpu/softgfx/internal/raster"
)

// FillRect fills the w×h rectangle at the user-space origin with the
// current colour.
func (g *Graphics) FillRect(w, h float64) {
	g.fillRect(0, 0, w, h)
}

// FillRectAt fills the w×h rectangle at (x, y) in user space.
func (g *Graphics) FillRectAt(x, y, w, h float64) {
	g.fillRect(x, y, w, h)
}

// DrawRect outlines the w×h rectangle at (x, y) with one-unit edges that
// lie inside it.
func (g *Graphics) DrawRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	if w <= 2 || h <= 2 {
		g.fillRect(x, y, w, h)
		return
	}
	g.fillRect(x, y, w, 1)
	g.fillRect(x, y+h-1, w, 1)
	g.fillRect(x, y+1, 1, h-2)
	g.fillRect(x+w-1, y+1, 1, h-2)
}

// Fill fills the whole surface, inside the clip, ignoring the transform.
func (g *Graphics) Fill() {
	t := g.top()
	g.setTop(Identity())
	g.fillRect(0, 0, float64(g.surface.width), float64(g.surface.height))
	g.setTop(t)
}

// Clear sets every pixel inside the clip to transparent, or to opaque
// black on an opaque surface.
func (g *Graphics) Clear() {
	mode := g.blendMode
	g.SetBlendMode(BlendClear)
	g.Fill()
	g.SetBlendMode(mode)
}

func (g *Graphics) fillRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	if w == 0 || h == 0 || math.IsNaN(w) || math.IsNaN(h) {
		return
	}
	g.prepare()
	if g.noop(g.src) || g.clip.Empty() {
		return
	}
	t := g.top()
	if t.Determinant() == 0 {
		g.skipped("FillRect", "singular transform")
		return
	}
	if t.Type()&TypeRotate != 0 {
		g.fillRectRotated(t, x, y, w, h)
		return
	}

	x0, y0 := t.TransformPoint(x, y)
	x1, y1 := t.TransformPoint(x+w, y+h)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	fx0, fy0 := fixed.FromFloat(x0), fixed.FromFloat(y0)
	fx1, fy1 := fixed.FromFloat(x1), fixed.FromFloat(y1)
	if fx0 == fx1 || fy0 == fy1 {
		return
	}

	if (fx0|fy0|fx1|fy1)&fixed.FracMask == 0 {
		r := raster.Rect{MinX: fx0.Floor(), MinY: fy0.Floor(), MaxX: fx1.Floor(), MaxY: fy1.Floor()}
		r = r.Intersect(g.clip)
		for py := r.MinY; py < r.MaxY; py++ {
			g.comp.Run(g.surface.row(py)[r.MinX:r.MaxX], g.src, 255)
		}
		return
	}
	g.fillRectAA(fx0, fy0, fx1, fy1)
}

// fillRectAA fills an axis-aligned rectangle with fractional edges. Each
// pixel's coverage is the exact area of overlap; equal coverages on a row
// are merged into one compositor run.
func (g *Graphics) fillRectAA(fx0, fy0, fx1, fy1 fixed.Fixed) {
	r := raster.Rect{MinX: fx0.Floor(), MinY: fy0.Floor(), MaxX: fx1.Ceil(), MaxY: fy1.Ceil()}
	r = r.Intersect(g.clip)
	if r.Empty() {
		return
	}
	// columns fully covered horizontally
	inner0, inner1 := fx0.Ceil(), fx1.Floor()
	runs := g.runs
	for py := r.MinY; py < r.MaxY; py++ {
		cy := raster.AxisCoverage(fy0, fy1, py)
		if cy == 0 {
			continue
		}
		runs.Start(py)
		for px := r.MinX; px < r.MaxX; {
			if px >= inner0 && px < inner1 {
				n := min(inner1, r.MaxX) - px
				runs.AddRun(px, n, raster.ToAlpha(cy))
				px += n
				continue
			}
			cx := raster.AxisCoverage(fx0, fx1, px)
			runs.Add(px, raster.ToAlpha(fixed.Mul(cx, cy)))
			px++
		}
	}
	runs.Flush()
}

// fillRectRotated fills a rectangle under a rotating or shearing
// transform. For each pixel centre the signed distances to the four edges
// are measured in device pixels through the inverse transform; each edge
// contributes clamp(0.5 + distance) and the product is the coverage.
func (g *Graphics) fillRectRotated(t Transform, x, y, w, h float64) {
	inv, ok := t.Invert()
	if !ok {
		g.skipped("FillRect", "singular transform")
		return
	}
	// Gradient lengths of u and v with respect to device position.
	gu := math.Hypot(inv.scaleX, inv.shearX)
	gv := math.Hypot(inv.shearY, inv.scaleY)

	q := g.quad(t, x, y, x+w, y+h)
	r := q.Bounds(1).Intersect(g.clip)
	if r.Empty() {
		return
	}
	stepU, stepV := inv.scaleX/gu, inv.shearY/gv
	width, height := w/gu, h/gv

	runs := g.runs
	for py := r.MinY; py < r.MaxY; py++ {
		cy := fixed.FromInt(py) + fixed.Half
		lo, hi, ok := q.BandSpan(cy-fixed.One, cy+fixed.One)
		if !ok {
			continue
		}
		xs := max(lo.Floor()-1, r.MinX)
		xe := min(hi.Ceil()+1, r.MaxX)
		if xs >= xe {
			continue
		}
		u, v := inv.TransformPoint(float64(xs)+0.5, float64(py)+0.5)
		du := (u - x) / gu
		dv := (v - y) / gv

		runs.Start(py)
		for px := xs; px < xe; px++ {
			cu := fixed.Mul(edgeCoverage(du), edgeCoverage(width-du))
			cv := fixed.Mul(edgeCoverage(dv), edgeCoverage(height-dv))
			runs.Add(px, raster.ToAlpha(fixed.Mul(cu, cv)))
			du += stepU
			dv += stepV
		}
	}
	runs.Flush()
}

// edgeCoverage is raster.EdgeCoverage for a distance in device pixels.
// Only distances within one pixel of the edge matter, so the rest clamp
// before narrowing to fixed point.
func edgeCoverage(d float64) fixed.Fixed {
	return raster.EdgeCoverage(fixed.FromFloat(max(min(d, 1), -1)))
}

// quad maps the user-space rectangle (x0,y0)-(x1,y1) to device space.
func (g *Graphics) quad(t Transform, x0, y0, x1, y1 float64) raster.Quad {
	var q raster.Quad
	for i, c := range [4][2]float64{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		dx, dy := t.TransformPoint(c[0], c[1])
		q[i] = raster.Vec{X: dx, Y: dy}
	}
	return q
}
