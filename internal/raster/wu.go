package raster

import "github.com/gogpu/softgfx/fixed"

// Line rasterizes an anti-aliased one-pixel line with Wu's algorithm.
//
// Pixel (i, j) has its centre at (i+0.5, j+0.5). Along the major axis the
// line covers [start-0.5, end+0.5]; the end pixels receive the fraction of
// that interval they contain. Each step splits the minor coordinate between
// the two pixels whose centres straddle it. A zero-length line draws nothing.
func Line(b Blitter, p1, p2 Point) {
	line(b, p1, p2, false)
}

// LineOpen is Line without the last point: along the major axis it covers
// [start-0.5, end-0.5], so segments chained end to start meet without
// overlapping.
func LineOpen(b Blitter, p1, p2 Point) {
	line(b, p1, p2, true)
}

func line(b Blitter, p1, p2 Point, open bool) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	switch {
	case dx == 0 && dy == 0:
		return
	case fixed.Abs(dx) >= fixed.Abs(dy):
		wu(b, p1.X, p1.Y, p2.X, p2.Y, false, open)
	default:
		wu(b, p1.Y, p1.X, p2.Y, p2.X, true, open)
	}
}

// wu walks the major axis a; b is the minor axis. steep swaps the roles
// back when plotting. open leaves out the pixel-wide interval around
// (a2, b2).
func wu(bl Blitter, a1, b1, a2, b2 fixed.Fixed, steep, open bool) {
	// reach past each end point along the major axis
	ext1, ext2 := fixed.Half, fixed.Half
	if open {
		ext2 = -fixed.Half
	}
	if a1 > a2 {
		a1, a2 = a2, a1
		b1, b2 = b2, b1
		ext1, ext2 = ext2, ext1
	}
	start := a1 - ext1
	end := a2 + ext2
	grad := fixed.Div(b2-b1, a2-a1)

	i0 := start.Floor()
	i1 := end.Ceil() - 1

	// minor coordinate at the centre of pixel i0
	b := b1 + fixed.Mul(grad, fixed.FromInt(i0)+fixed.Half-a1)
	for i := i0; i <= i1; i++ {
		cov := fixed.One
		if i == i0 || i == i1 {
			lo := fixed.Max(start, fixed.FromInt(i))
			hi := fixed.Min(end, fixed.FromInt(i+1))
			cov = hi - lo
		}
		m := b - fixed.Half
		j := m.Floor()
		f := m.Frac()
		plot(bl, i, j, fixed.Mul(cov, fixed.One-f), steep)
		plot(bl, i, j+1, fixed.Mul(cov, f), steep)
		b += grad
	}
}

func plot(bl Blitter, i, j int, cov fixed.Fixed, steep bool) {
	a := ToAlpha(cov)
	if a == 0 {
		return
	}
	if steep {
		bl.BlitH(j, i, 1, a)
	} else {
		bl.BlitH(i, j, 1, a)
	}
}
