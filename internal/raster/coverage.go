package raster

import "github.com/gogpu/softgfx/fixed"

// AxisCoverage returns the length of [lo, hi] that falls inside pixel
// [i, i+1].
func AxisCoverage(lo, hi fixed.Fixed, i int) fixed.Fixed {
	l := fixed.Max(lo, fixed.FromInt(i))
	h := fixed.Min(hi, fixed.FromInt(i+1))
	if h <= l {
		return 0
	}
	return h - l
}

// EdgeCoverage converts a signed distance from an edge, in device pixels
// and positive inside, into the coverage of a pixel centred at that
// distance.
func EdgeCoverage(d fixed.Fixed) fixed.Fixed {
	c := d + fixed.Half
	if c <= 0 {
		return 0
	}
	if c >= fixed.One {
		return fixed.One
	}
	return c
}

// Runs coalesces consecutive pixels of equal alpha on one row into single
// BlitH calls. Zero alpha ends the current run.
type Runs struct {
	b     Blitter
	y     int
	x     int
	n     int
	alpha uint8
}

// NewRuns returns a coalescer that emits to b.
func NewRuns(b Blitter) *Runs {
	return &Runs{b: b}
}

// Start begins row y, flushing any pending run.
func (r *Runs) Start(y int) {
	r.Flush()
	r.y = y
}

// Add appends pixel x with the given alpha.
func (r *Runs) Add(x int, alpha uint8) {
	if r.n > 0 && alpha == r.alpha && x == r.x+r.n {
		r.n++
		return
	}
	r.Flush()
	if alpha == 0 {
		return
	}
	r.x, r.n, r.alpha = x, 1, alpha
}

// AddRun appends n pixels starting at x with the given alpha.
func (r *Runs) AddRun(x, n int, alpha uint8) {
	if n <= 0 {
		return
	}
	if r.n > 0 && alpha == r.alpha && x == r.x+r.n {
		r.n += n
		return
	}
	r.Flush()
	if alpha == 0 {
		return
	}
	r.x, r.n, r.alpha = x, n, alpha
}

// Flush emits the pending run.
func (r *Runs) Flush() {
	if r.n > 0 {
		r.b.BlitH(r.x, r.y, r.n, r.alpha)
		r.n = 0
	}
}
