package raster

import (
	"math"

	"github.com/gogpu/softgfx/fixed"
)

// Cohen-Sutherland region codes.
const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func outcode(x, y, minX, minY, maxX, maxY fixed.Fixed) int {
	code := 0
	if x < minX {
		code |= outLeft
	} else if x > maxX {
		code |= outRight
	}
	if y < minY {
		code |= outTop
	} else if y > maxY {
		code |= outBottom
	}
	return code
}

// ClipLine clips the segment p1-p2 to r grown by one pixel on every side.
// It returns false when the segment lies entirely outside. Intersections
// are computed parametrically with 64-bit intermediates.
func ClipLine(p1, p2 Point, r Rect) (Point, Point, bool) {
	minX := fixed.FromInt(r.MinX - 1)
	minY := fixed.FromInt(r.MinY - 1)
	maxX := fixed.FromInt(r.MaxX + 1)
	maxY := fixed.FromInt(r.MaxY + 1)

	c1 := outcode(p1.X, p1.Y, minX, minY, maxX, maxY)
	c2 := outcode(p2.X, p2.Y, minX, minY, maxX, maxY)
	// Rounded intersections can graze a corner; give up after a few rounds.
	for n := 0; n < 8; n++ {
		if c1|c2 == 0 {
			return p1, p2, true
		}
		if c1&c2 != 0 {
			return p1, p2, false
		}
		c := c1
		if c == 0 {
			c = c2
		}
		var x, y fixed.Fixed
		dx := p2.X - p1.X
		dy := p2.Y - p1.Y
		switch {
		case c&outTop != 0:
			y = minY
			x = p1.X + fixed.MulDiv(dx, minY-p1.Y, dy)
		case c&outBottom != 0:
			y = maxY
			x = p1.X + fixed.MulDiv(dx, maxY-p1.Y, dy)
		case c&outLeft != 0:
			x = minX
			y = p1.Y + fixed.MulDiv(dy, minX-p1.X, dx)
		default:
			x = maxX
			y = p1.Y + fixed.MulDiv(dy, maxX-p1.X, dx)
		}
		if c == c1 {
			p1 = Point{x, y}
			c1 = outcode(x, y, minX, minY, maxX, maxY)
		} else {
			p2 = Point{x, y}
			c2 = outcode(x, y, minX, minY, maxX, maxY)
		}
	}
	return p1, p2, c1|c2 == 0
}

// ClipSegment clips the device-space segment (x1, y1)-(x2, y2) to r grown by
// one pixel on every side. It works in float64, so endpoints far outside the
// fixed-point range keep their slope. Non-finite input is rejected.
func ClipSegment(x1, y1, x2, y2 float64, r Rect) (ax, ay, bx, by float64, ok bool) {
	for _, v := range [4]float64{x1, y1, x2, y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	// Liang-Barsky: each edge is p*t <= q.
	for _, e := range [4][2]float64{
		{-dx, x1 - float64(r.MinX-1)},
		{dx, float64(r.MaxX+1) - x1},
		{-dy, y1 - float64(r.MinY-1)},
		{dy, float64(r.MaxY+1) - y1},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}
