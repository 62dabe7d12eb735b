package filter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/softgfx"
	"github.com/gogpu/softgfx/internal/parallel"
)

// Limits applied to Blur parameters.
const (
	MaxRadius = 255
	MaxPasses = 15
)

// bandPixels is the least work, in pixels, handed to one worker.
const bandPixels = 1 << 14

var workers = sync.OnceValue(func() *parallel.Pool {
	return parallel.NewPool(0)
})

var (
	// ErrSizeMismatch is returned when source and destination differ in size.
	ErrSizeMismatch = errors.New("filter: surface sizes differ")

	// ErrOpacityMismatch is returned when a non-opaque result would be
	// written to an opaque surface.
	ErrOpacityMismatch = errors.New("filter: opaque destination for non-opaque source")
)

// Blur is a box blur of integer radius. Each pass averages a
// (2*Radius+1)² window; three passes approximate a Gaussian. Large
// surfaces are split into row and column bands blurred in parallel.
//
// Opaque sources extend their border pixels outward. Other sources treat
// everything outside as transparent, so their edges fade.
type Blur struct {
	// Radius is clamped to [0, MaxRadius]. Zero copies the source.
	Radius int

	// Passes is clamped to [1, MaxPasses].
	Passes int

	work, tmp []uint32
	row       []uint32
}

// Apply blurs src into dst. dst and src may be the same surface.
func (b *Blur) Apply(dst, src *softgfx.Surface) error {
	if dst == nil || src == nil {
		return fmt.Errorf("%w: nil surface", softgfx.ErrInvalidDimensions)
	}
	if !dst.IsMutable() {
		return softgfx.ErrImmutableSurface
	}
	w, h := src.Width(), src.Height()
	if dst.Width() != w || dst.Height() != h {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrSizeMismatch, w, h, dst.Width(), dst.Height())
	}
	if dst.IsOpaque() && !src.IsOpaque() {
		return ErrOpacityMismatch
	}

	b.load(src)
	r := min(max(b.Radius, 0), MaxRadius)
	passes := min(max(b.Passes, 1), MaxPasses)
	if r > 0 {
		clamp := src.IsOpaque()
		pool := workers()
		for n := 0; n < passes; n++ {
			pool.Bands(h, bandPixels/w, func(lo, hi int) {
				for y := lo; y < hi; y++ {
					boxLine(b.tmp[y*w:], b.work[y*w:], w, 1, r, clamp)
				}
			})
			pool.Bands(w, bandPixels/h, func(lo, hi int) {
				for x := lo; x < hi; x++ {
					boxLine(b.work[x:], b.tmp[x:], h, w, r, clamp)
				}
			})
		}
	}
	b.store(dst)
	return nil
}

// load copies src into the compact work buffer.
func (b *Blur) load(src *softgfx.Surface) {
	w, h := src.Width(), src.Height()
	n := w * h
	if cap(b.work) < n {
		b.work = make([]uint32, n)
		b.tmp = make([]uint32, n)
	}
	b.work, b.tmp = b.work[:n], b.tmp[:n]
	for y := 0; y < h; y++ {
		b.row = src.ReadRow(y, b.row)
		copy(b.work[y*w:], b.row)
	}
}

func (b *Blur) store(dst *softgfx.Surface) {
	w, h, stride := dst.Width(), dst.Height(), dst.Stride()
	pix := dst.Pix()
	for y := 0; y < h; y++ {
		copy(pix[y*stride:y*stride+w], b.work[y*w:(y+1)*w])
	}
}

// boxLine averages n pixels spaced stride apart in in, writing to out with
// the same spacing. Sums run in modular uint32 arithmetic; each window sum
// fits because 511 * 255 < 1<<24.
func boxLine(out, in []uint32, n, stride, r int, clamp bool) {
	div := uint32(2*r + 1)
	half := div / 2
	var sa, sr, sg, sb uint32
	for i := -r; i <= r; i++ {
		p := texel(in, i, n, stride, clamp)
		sa += p >> 24
		sr += p >> 16 & 0xff
		sg += p >> 8 & 0xff
		sb += p & 0xff
	}
	for i := 0; i < n; i++ {
		out[i*stride] = (sa+half)/div<<24 | (sr+half)/div<<16 | (sg+half)/div<<8 | (sb+half)/div
		p := texel(in, i+r+1, n, stride, clamp)
		q := texel(in, i-r, n, stride, clamp)
		sa += p>>24 - q>>24
		sr += p>>16&0xff - q>>16&0xff
		sg += p>>8&0xff - q>>8&0xff
		sb += p&0xff - q&0xff
	}
}

func texel(in []uint32, i, n, stride int, clamp bool) uint32 {
	if i < 0 || i >= n {
		if !clamp {
			return 0
		}
		i = max(0, min(i, n-1))
	}
	return in[i*stride]
}
