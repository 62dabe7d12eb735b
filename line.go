package softgfx

import (
	"github.com/gogpu/softgfx/fixed"
	"github.com/gogpu/softgfx/internal/raster"
)

// DrawLine draws an anti-aliased one-pixel-wide line in the current colour.
// The endpoints are transformed; the width is not. Pixel (i, j) is centred
// at (i+0.5, j+0.5), so a line from (0.5, 0.5) to (4.5, 0.5) fully covers
// pixels 0 through 4 of the first row.
func (g *Graphics) DrawLine(x1, y1, x2, y2 float64) {
	g.drawLine(x1, y1, x2, y2, false)
}

// DrawLineOpen draws like DrawLine but leaves out the last point, so a
// polyline drawn segment by segment covers each shared vertex once.
func (g *Graphics) DrawLineOpen(x1, y1, x2, y2 float64) {
	g.drawLine(x1, y1, x2, y2, true)
}

func (g *Graphics) drawLine(x1, y1, x2, y2 float64, open bool) {
	g.prepare()
	if g.noop(g.src) || g.clip.Empty() {
		return
	}
	t := g.top()
	dx1, dy1 := t.TransformPoint(x1, y1)
	dx2, dy2 := t.TransformPoint(x2, y2)
	if dx1 == dx2 && dy1 == dy2 {
		g.skipped("DrawLine", "zero length")
		return
	}
	// Clip before narrowing to fixed point, which saturates each coordinate
	// on its own.
	dx1, dy1, dx2, dy2, ok := raster.ClipSegment(dx1, dy1, dx2, dy2, g.clip)
	if !ok {
		return
	}
	p1 := raster.Point{X: fixed.FromFloat(dx1), Y: fixed.FromFloat(dy1)}
	p2 := raster.Point{X: fixed.FromFloat(dx2), Y: fixed.FromFloat(dy2)}
	if p1 == p2 {
		return
	}
	p1, p2, ok = raster.ClipLine(p1, p2, g.clip)
	if !ok {
		return
	}
	if open {
		raster.LineOpen(colorBlitter{g}, p1, p2)
		return
	}
	raster.Line(colorBlitter{g}, p1, p2)
}
