package raster

import (
	"math"

	"github.com/gogpu/softgfx/fixed"
)

// Vec is a device-space point kept in float64 so corners far outside the
// fixed-point range keep their geometry.
type Vec struct {
	X, Y float64
}

// Quad is a transformed rectangle in device space. The corners are the
// images of (0,0), (w,0), (0,h) and (w,h), in that order, so its edges are
// P0P1, P0P2, P1P3 and P2P3.
type Quad [4]Vec

var quadEdges = [4][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}

// pixel bounds saturate here, well inside int on every platform.
const boundLimit = 1 << 30

// Bounds returns the pixel rectangle covering the quad, grown by pad pixels
// on every side. A quad with a NaN corner has empty bounds.
func (q Quad) Bounds(pad int) Rect {
	minX, minY := q[0].X, q[0].Y
	maxX, maxY := minX, minY
	for _, p := range q {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return Rect{}
		}
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{
		MinX: toInt(math.Floor(minX)) - pad,
		MinY: toInt(math.Floor(minY)) - pad,
		MaxX: toInt(math.Ceil(maxX)) + pad,
		MaxY: toInt(math.Ceil(maxY)) + pad,
	}
}

func toInt(v float64) int {
	switch {
	case v <= -boundLimit:
		return -boundLimit
	case v >= boundLimit:
		return boundLimit
	}
	return int(v)
}

// Span returns the horizontal extent of the quad on scanline y. ok is false
// when the scanline misses the quad. Extents beyond the fixed-point range
// saturate.
func (q Quad) Span(y fixed.Fixed) (lo, hi fixed.Fixed, ok bool) {
	l, h, ok := q.span(y.Float())
	return fixed.FromFloat(l), fixed.FromFloat(h), ok
}

func (q Quad) span(y float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, e := range quadEdges {
		p1, p2 := q[e[0]], q[e[1]]
		if (y < p1.Y) == (y < p2.Y) {
			continue
		}
		x := p1.X + (y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y)
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
		ok = true
	}
	return lo, hi, ok
}

// BandSpan returns the horizontal extent of the part of the quad lying
// between scanlines y0 and y1, y0 <= y1.
func (q Quad) BandSpan(y0, y1 fixed.Fixed) (lo, hi fixed.Fixed, ok bool) {
	fy0, fy1 := y0.Float(), y1.Float()
	l, h := math.Inf(1), math.Inf(-1)
	for _, y := range [2]float64{fy0, fy1} {
		if sl, sh, hit := q.span(y); hit {
			l, h, ok = math.Min(l, sl), math.Max(h, sh), true
		}
	}
	for _, p := range q {
		if p.Y >= fy0 && p.Y <= fy1 {
			l, h, ok = math.Min(l, p.X), math.Max(h, p.X), true
		}
	}
	return fixed.FromFloat(l), fixed.FromFloat(h), ok
}
