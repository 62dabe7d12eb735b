package softgfx

import (
	"image"
	"log/slog"

	"github.com/gogpu/softgfx/internal/blend"
	"github.com/gogpu/softgfx/internal/raster"
)

// Graphics draws onto one mutable Surface.
//
// It carries a transform stack, a device-space clip rectangle, and the
// current colour, alpha, blend mode, interpolation and edge clamp. Every
// drawing call completes before returning. A Graphics must not be used
// from more than one goroutine at a time, and two Graphics drawing onto
// the same surface need external synchronization.
type Graphics struct {
	surface *Surface
	log     *slog.Logger

	transforms []Transform // never empty; the last entry is current
	clip       raster.Rect

	color         Color
	alpha         uint8
	blendMode     BlendMode
	interpolation Interpolation
	edgeClamp     EdgeClamp

	// Derived from colour, alpha and blend mode; rebuilt lazily.
	src   uint32
	comp  blend.Compositor
	stale bool

	scratch []uint32
	runs    *raster.Runs
}

func newGraphics(s *Surface, opts ...GraphicsOption) *Graphics {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := &Graphics{
		surface: s,
		log:     o.logger,
	}
	if o.scratch > 0 {
		g.scratch = make([]uint32, o.scratch)
	}
	g.runs = raster.NewRuns(colorBlitter{g})
	g.Reset()
	g.interpolation = o.interpolation
	g.SetBlendMode(o.blendMode)
	return g
}

func (g *Graphics) logger() *slog.Logger {
	if g.log != nil {
		return g.log
	}
	return Logger()
}

func (g *Graphics) skipped(call, reason string) {
	g.logger().Debug("softgfx: draw skipped", "call", call, "reason", reason)
}

// Surface returns the drawing target.
func (g *Graphics) Surface() *Surface { return g.surface }

// Reset restores the default state: clip to the whole surface, a single
// identity transform, opaque black, alpha 255, BlendSrcOver, Bilinear and
// no edge clamp.
func (g *Graphics) Reset() {
	g.RemoveClip()
	g.transforms = append(g.transforms[:0], Identity())
	g.color = Black
	g.alpha = 255
	g.blendMode = BlendSrcOver
	g.interpolation = Bilinear
	g.edgeClamp = EdgeClampNone
	g.stale = true
}

// Transform stack

// PushTransform saves a copy of the current transform.
func (g *Graphics) PushTransform() {
	g.transforms = append(g.transforms, g.top())
}

// PopTransform restores the transform saved by the matching
// PushTransform. It fails when nothing was pushed.
func (g *Graphics) PopTransform() error {
	if len(g.transforms) <= 1 {
		return ErrTransformStackEmpty
	}
	g.transforms = g.transforms[:len(g.transforms)-1]
	return nil
}

func (g *Graphics) top() Transform {
	return g.transforms[len(g.transforms)-1]
}

func (g *Graphics) setTop(t Transform) {
	g.transforms[len(g.transforms)-1] = t
}

// Transform returns the current transform.
func (g *Graphics) Transform() Transform { return g.top() }

// SetTransform replaces the current transform.
func (g *Graphics) SetTransform(t Transform) { g.setTop(t) }

// ConcatTransform applies t before the current transform.
func (g *Graphics) ConcatTransform(t Transform) { g.setTop(g.top().Concatenate(t)) }

// IdentityTransform resets the current transform to the identity.
func (g *Graphics) IdentityTransform() { g.setTop(Identity()) }

// Translate applies a translation before the current transform.
func (g *Graphics) Translate(x, y float64) { g.setTop(g.top().Translate(x, y)) }

// Scale applies a scale before the current transform.
func (g *Graphics) Scale(sx, sy float64) { g.setTop(g.top().Scale(sx, sy)) }

// Rotate applies a rotation (radians) before the current transform.
func (g *Graphics) Rotate(angle float64) { g.setTop(g.top().Rotate(angle)) }

// RotateAbout applies a rotation about (x, y) before the current transform.
func (g *Graphics) RotateAbout(angle, x, y float64) {
	g.setTop(g.top().RotateAbout(angle, x, y))
}

// Shear applies a shear before the current transform.
func (g *Graphics) Shear(shx, shy float64) { g.setTop(g.top().Shear(shx, shy)) }

// Clipping. The clip is in device pixels and ignores the transform.

func (g *Graphics) bounds() raster.Rect {
	return raster.Rect{MaxX: g.surface.width, MaxY: g.surface.height}
}

// SetClip sets the clip to the given rectangle, limited to the surface.
func (g *Graphics) SetClip(x, y, w, h int) {
	g.RemoveClip()
	g.ClipRect(x, y, w, h)
}

// ClipRect intersects the clip with the given rectangle. The clip can only
// shrink.
func (g *Graphics) ClipRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		g.clip = raster.Rect{}
		return
	}
	g.clip = g.clip.Intersect(raster.Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h})
}

// RemoveClip resets the clip to the whole surface.
func (g *Graphics) RemoveClip() {
	g.clip = g.bounds()
}

// Clip returns the clip rectangle.
func (g *Graphics) Clip() image.Rectangle {
	return image.Rect(g.clip.MinX, g.clip.MinY, g.clip.MaxX, g.clip.MaxY)
}

// Paint state

// SetColor sets the drawing colour.
func (g *Graphics) SetColor(c Color) {
	if c != g.color {
		g.color = c
		g.stale = true
	}
}

// Color returns the drawing colour.
func (g *Graphics) Color() Color { return g.color }

// SetAlpha sets the global alpha, clamped to 0-255. It multiplies every
// drawn pixel, colour fills and textures alike.
func (g *Graphics) SetAlpha(a int) {
	a8 := uint8(clampByte(a))
	if a8 != g.alpha {
		g.alpha = a8
		g.stale = true
	}
}

// Alpha returns the global alpha.
func (g *Graphics) Alpha() int { return int(g.alpha) }

// SetBlendMode sets the blend mode. Unknown modes fall back to
// BlendSrcOver.
func (g *Graphics) SetBlendMode(m BlendMode) {
	if !m.Valid() {
		g.logger().Warn("softgfx: unknown blend mode, using SrcOver", "mode", uint8(m))
		m = BlendSrcOver
	}
	if m != g.blendMode {
		g.blendMode = m
		g.stale = true
	}
}

// BlendMode returns the blend mode.
func (g *Graphics) BlendMode() BlendMode { return g.blendMode }

// SetInterpolation sets texture sampling.
func (g *Graphics) SetInterpolation(i Interpolation) {
	if i != NearestNeighbor {
		i = Bilinear
	}
	g.interpolation = i
}

// Interpolation returns texture sampling.
func (g *Graphics) Interpolation() Interpolation { return g.interpolation }

// SetEdgeClamp sets which texture edges are hard.
func (g *Graphics) SetEdgeClamp(e EdgeClamp) { g.edgeClamp = e & EdgeClampAll }

// EdgeClamp returns the hard texture edges.
func (g *Graphics) EdgeClamp() EdgeClamp { return g.edgeClamp }

// prepare rebuilds the source pixel and compositor after a state change.
// The opaque-destination choice is made here, never per pixel.
func (g *Graphics) prepare() {
	if !g.stale {
		return
	}
	g.src = blend.Scale(g.color.Premultiplied(), g.alpha)
	g.comp = blend.New(blend.Op(g.blendMode), g.surface.opaque)
	g.stale = false
}

// noop reports whether drawing with source s could not change any pixel.
func (g *Graphics) noop(s uint32) bool {
	return g.blendMode == BlendDst || (s == 0 && g.comp.SkipsTransparent())
}

// span returns a scratch row of n pixels owned by g.
func (g *Graphics) span(n int) []uint32 {
	if cap(g.scratch) < n {
		g.scratch = make([]uint32, n, max(n, 2*cap(g.scratch)))
	}
	return g.scratch[:n]
}

// colorBlitter composites the current colour, clipped, for the
// rasterizers.
type colorBlitter struct {
	g *Graphics
}

func (b colorBlitter) BlitH(x, y, width int, alpha uint8) {
	g := b.g
	c := g.clip
	if y < c.MinY || y >= c.MaxY {
		return
	}
	x0 := max(x, c.MinX)
	x1 := min(x+width, c.MaxX)
	if x0 >= x1 {
		return
	}
	g.comp.Run(g.surface.row(y)[x0:x1], g.src, alpha)
}
