// Package softgfx is a software 2D rasterizer and compositor.
//
// # Overview
//
// softgfx draws into in-memory pixel buffers without any GPU. A Surface holds
// premultiplied ARGB pixels; a Graphics bound to a mutable Surface draws
// anti-aliased lines, filled rectangles and textures under an affine
// transform, a device-space clip, a global alpha and one of thirteen blend
// modes.
//
// # Quick Start
//
//	dst, _ := softgfx.NewSurface(320, 240, true)
//	g, _ := dst.NewGraphics()
//
//	g.SetColor(softgfx.RGB(40, 80, 160))
//	g.Fill()
//
//	g.SetColor(softgfx.White)
//	g.Translate(160, 120)
//	g.Rotate(math.Pi / 6)
//	g.FillRectAt(-50, -20, 100, 40)
//
//	_ = dst.SavePNG("out.png")
//
// # Pixels and colours
//
// Color values are straight (non-premultiplied) ARGB. Surfaces store
// premultiplied ARGB; Premultiply, Unpremultiply and ConvertPixels move
// between the layouts. Surfaces implement image.Image and FromImage imports
// any image.
//
// # Precision
//
// Geometry is transformed in float64 and converted once per draw call to
// 16.16 fixed point (package fixed); all per-pixel stepping is integer.
//
// # Architecture
//
//   - Public API: Surface, Graphics, Transform, Color, TiledImage
//   - fixed: 16.16 arithmetic
//   - filter: blur and drop shadow passes over surfaces
//   - font: image fonts drawn as textures
//   - internal/blend: the compositor, one kernel per blend mode with an
//     opaque-destination variant
//   - internal/raster: Wu lines, line clipping, coverage runs, quad spans
//   - internal/image: strided views and nearest/bilinear samplers
//   - internal/color: pixel layout conversion
//
// # Logging
//
// Nothing is logged unless SetLogger is called. See SetLogger.
package softgfx
