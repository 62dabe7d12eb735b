package softgfx

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	intColor "github.com/gogpu/softgfx/internal/color"
	intImage "github.com/gogpu/softgfx/internal/image"
)

// Surface is a rectangular array of premultiplied ARGB pixels.
//
// A surface either owns its storage or is a view into a root surface; a
// view shares the root's pixels through its offset and stride and never
// resizes them. Mutable surfaces can be drawn onto with a Graphics.
// Immutable surfaces can only be read and used as textures. An opaque
// surface has alpha 255 in every pixel and keeps it that way under every
// blend mode.
type Surface struct {
	width   int
	height  int
	stride  int
	offset  int
	pix     []uint32
	opaque  bool
	mutable bool
	root    *Surface
}

// NewSurface allocates a mutable w×h surface. Alpha surfaces start fully
// transparent, opaque surfaces start opaque black.
func NewSurface(w, h int, opaque bool) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	s := &Surface{
		width:   w,
		height:  h,
		stride:  w,
		pix:     make([]uint32, w*h),
		opaque:  opaque,
		mutable: true,
	}
	if opaque {
		fill(s.pix, 0xff000000)
	}
	return s, nil
}

// NewSurfaceFilled allocates a mutable w×h surface filled with c. On an
// opaque surface c is composited over black.
func NewSurfaceFilled(w, h int, opaque bool, c Color) (*Surface, error) {
	s, err := NewSurface(w, h, opaque)
	if err != nil {
		return nil, err
	}
	p := c.Premultiplied()
	if opaque {
		p |= 0xff000000
	}
	fill(s.pix, p)
	return s, nil
}

// NewSurfaceFromPixels wraps premultiplied ARGB pixels laid out row by row
// with stride w. The slice is used directly, not copied. When opaque is set
// the caller guarantees every pixel has alpha 255.
func NewSurfaceFromPixels(w, h int, opaque bool, pix []uint32, mutable bool) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if len(pix) < w*h {
		return nil, fmt.Errorf("%w: have %d pixels, need %d", ErrDataTooSmall, len(pix), w*h)
	}
	return &Surface{
		width:   w,
		height:  h,
		stride:  w,
		pix:     pix,
		opaque:  opaque,
		mutable: mutable,
	}, nil
}

// FromImage converts any image into an immutable surface. The result is
// opaque when every pixel of img is.
func FromImage(img image.Image) *Surface {
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	w, h := b.Dx(), b.Dy()
	pix := make([]uint32, w*h)
	opaque := true
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*w]
		for x := 0; x < w; x++ {
			r, g, bl, a := row[4*x], row[4*x+1], row[4*x+2], row[4*x+3]
			pix[y*w+x] = intColor.Pack(uint32(a), uint32(r), uint32(g), uint32(bl))
			if a != 0xff {
				opaque = false
			}
		}
	}
	return &Surface{width: w, height: h, stride: w, pix: pix, opaque: opaque}
}

func fill(pix []uint32, v uint32) {
	for i := range pix {
		pix[i] = v
	}
}

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the distance in pixels between the starts of two rows.
func (s *Surface) Stride() int { return s.stride }

// Offset returns the index of pixel (0, 0) in the backing storage.
func (s *Surface) Offset() int { return s.offset }

// IsOpaque reports whether every pixel has full alpha.
func (s *Surface) IsOpaque() bool { return s.opaque }

// IsMutable reports whether the surface can be drawn onto.
func (s *Surface) IsMutable() bool { return s.mutable }

// IsView reports whether the surface shares another surface's storage.
func (s *Surface) IsView() bool { return s.root != nil }

// Root returns the surface owning the storage; a root returns itself.
func (s *Surface) Root() *Surface {
	if s.root != nil {
		return s.root
	}
	return s
}

// Pix returns the backing pixels starting at (0, 0); row y begins at
// y*Stride(). Immutable surfaces return nil.
func (s *Surface) Pix() []uint32 {
	if !s.mutable {
		return nil
	}
	return s.pix[s.offset:]
}

// SubSurface returns a w×h view at (x, y) sharing this surface's storage.
// The view inherits mutability and opacity.
func (s *Surface) SubSurface(x, y, w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if x < 0 || y < 0 || x+w > s.width || y+h > s.height {
		return nil, fmt.Errorf("%w: %dx%d at (%d,%d) in %dx%d",
			ErrOutOfBounds, w, h, x, y, s.width, s.height)
	}
	return &Surface{
		width:   w,
		height:  h,
		stride:  s.stride,
		offset:  s.offset + y*s.stride + x,
		pix:     s.pix,
		opaque:  s.opaque,
		mutable: s.mutable,
		root:    s.Root(),
	}, nil
}

func (s *Surface) buf() intImage.Buf {
	return intImage.Buf{
		Pix:    s.pix,
		Offset: s.offset,
		Stride: s.stride,
		Width:  s.width,
		Height: s.height,
	}
}

func (s *Surface) row(y int) []uint32 {
	i := s.offset + y*s.stride
	return s.pix[i : i+s.width]
}

// ReadRow copies row y into buf, growing it as needed, and returns the
// result. It works on immutable surfaces. y must be in [0, Height).
func (s *Surface) ReadRow(y int, buf []uint32) []uint32 {
	return append(buf[:0], s.row(y)...)
}

// RawPixel returns the premultiplied ARGB pixel at (x, y), or 0 outside
// the surface.
func (s *Surface) RawPixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.pix[s.offset+y*s.stride+x]
}

// ColorAt returns the straight colour at (x, y).
func (s *Surface) ColorAt(x, y int) Color {
	return Unpremultiply(s.RawPixel(x, y))
}

// IsTransparent reports whether the pixel at (x, y) has zero alpha.
// Pixels outside the surface are transparent.
func (s *Surface) IsTransparent(x, y int) bool {
	return s.RawPixel(x, y)>>24 == 0
}

func (s *Surface) compactCopy(mutable bool) *Surface {
	pix := make([]uint32, s.width*s.height)
	for y := 0; y < s.height; y++ {
		copy(pix[y*s.width:], s.row(y))
	}
	return &Surface{
		width:   s.width,
		height:  s.height,
		stride:  s.width,
		pix:     pix,
		opaque:  s.opaque,
		mutable: mutable,
	}
}

// MutableCopy returns a new mutable surface with a copy of the pixels.
func (s *Surface) MutableCopy() *Surface {
	return s.compactCopy(true)
}

// ImmutableCopy returns an immutable surface with the same pixels. An
// immutable root surface is returned as is.
func (s *Surface) ImmutableCopy() *Surface {
	if !s.mutable && s.root == nil {
		return s
	}
	return s.compactCopy(false)
}

// Screenshot returns a compact mutable copy of the current pixels.
func (s *Surface) Screenshot() *Surface {
	return s.compactCopy(true)
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color {
	a, r, g, b := intColor.Unpack(s.RawPixel(x, y))
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// ToRGBA converts the surface to an *image.RGBA.
func (s *Surface) ToRGBA() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	for y := 0; y < s.height; y++ {
		dst := img.Pix[y*img.Stride:]
		for x, p := range s.row(y) {
			a, r, g, b := intColor.Unpack(p)
			dst[4*x] = uint8(r)
			dst[4*x+1] = uint8(g)
			dst[4*x+2] = uint8(b)
			dst[4*x+3] = uint8(a)
		}
	}
	return img
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.ToRGBA()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// NewGraphics returns a rasterizer drawing onto s.
func (s *Surface) NewGraphics(opts ...GraphicsOption) (*Graphics, error) {
	if !s.mutable {
		return nil, ErrImmutableSurface
	}
	return newGraphics(s, opts...), nil
}
