// Package raster converts geometry in 16.16 device coordinates into runs of
// anti-aliasing coverage.
//
// Rasterizers never touch pixels; they hand coverage to a Blitter, which
// owns clipping against the destination and compositing.
package raster

import "github.com/gogpu/softgfx/fixed"

// Blitter receives coverage from the rasterizers.
type Blitter interface {
	// BlitH composites width pixels starting at (x, y) with one coverage.
	BlitH(x, y, width int, alpha uint8)
}

// Rect is an integer pixel rectangle, Min inclusive and Max exclusive.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Empty reports whether r contains no pixels.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Intersect returns the largest rectangle contained in both r and s.
func (r Rect) Intersect(s Rect) Rect {
	r.MinX = max(r.MinX, s.MinX)
	r.MinY = max(r.MinY, s.MinY)
	r.MaxX = min(r.MaxX, s.MaxX)
	r.MaxY = min(r.MaxY, s.MaxY)
	if r.Empty() {
		return Rect{}
	}
	return r
}

// Contains reports whether pixel (x, y) lies in r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// Point is a position in 16.16 device coordinates.
type Point struct {
	X, Y fixed.Fixed
}

// ToAlpha converts a coverage in [0, One] to an 8-bit alpha.
func ToAlpha(c fixed.Fixed) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= fixed.One {
		return 255
	}
	return uint8((int64(c)*255 + int64(fixed.Half)) >> fixed.Shift)
}
