// Package image provides strided pixel views and texture samplers.
package image

// Buf is a view over premultiplied ARGB pixels. Row y starts at
// Pix[Offset+y*Stride]; views into a larger buffer share its storage.
type Buf struct {
	Pix    []uint32
	Offset int
	Stride int
	Width  int
	Height int
}

// At returns the pixel at (x, y). The coordinates must be in range.
func (b Buf) At(x, y int) uint32 {
	return b.Pix[b.Offset+y*b.Stride+x]
}

// Row returns the Width pixels of row y.
func (b Buf) Row(y int) []uint32 {
	i := b.Offset + y*b.Stride
	return b.Pix[i : i+b.Width : i+b.Width]
}

// Sub returns the view of the w×h rectangle at (x, y). The rectangle must
// lie inside b.
func (b Buf) Sub(x, y, w, h int) Buf {
	return Buf{
		Pix:    b.Pix,
		Offset: b.Offset + y*b.Stride + x,
		Stride: b.Stride,
		Width:  w,
		Height: h,
	}
}

// Opaque reports whether every pixel has alpha 255.
func (b Buf) Opaque() bool {
	for y := 0; y < b.Height; y++ {
		for _, p := range b.Row(y) {
			if p>>24 != 0xff {
				return false
			}
		}
	}
	return true
}
