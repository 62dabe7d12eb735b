package softgfx

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestNewSurface(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		opaque  bool
		wantErr error
		first   uint32
	}{
		{"alpha", 4, 3, false, nil, 0},
		{"opaque starts black", 4, 3, true, nil, 0xff000000},
		{"zero width", 0, 3, false, ErrInvalidDimensions, 0},
		{"negative height", 3, -1, false, ErrInvalidDimensions, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSurface(tt.w, tt.h, tt.opaque)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if s.Width() != tt.w || s.Height() != tt.h || s.Stride() != tt.w || s.IsOpaque() != tt.opaque {
				t.Errorf("surface = %dx%d stride %d opaque %v", s.Width(), s.Height(), s.Stride(), s.IsOpaque())
			}
			if !s.IsMutable() || s.IsView() {
				t.Error("new surface should be a mutable root")
			}
			if got := s.RawPixel(0, 0); got != tt.first {
				t.Errorf("pixel (0,0) = %08x, want %08x", got, tt.first)
			}
		})
	}
}

func TestNewSurfaceFilled(t *testing.T) {
	s, err := NewSurfaceFilled(2, 2, true, RGBA(255, 255, 255, 128))
	if err != nil {
		t.Fatal(err)
	}
	// Half white over black.
	if got := s.RawPixel(1, 1); got != 0xff808080 {
		t.Errorf("pixel = %08x, want ff808080", got)
	}
}

func TestNewSurfaceFromPixels(t *testing.T) {
	pix := []uint32{1, 2, 3, 4, 5, 6}
	s, err := NewSurfaceFromPixels(3, 2, false, pix, false)
	if err != nil {
		t.Fatal(err)
	}
	if s.RawPixel(2, 1) != 6 {
		t.Errorf("RawPixel(2,1) = %d, want 6", s.RawPixel(2, 1))
	}
	if s.Pix() != nil {
		t.Error("immutable surface exposed its pixels")
	}
	if _, err := NewSurfaceFromPixels(3, 3, false, pix, true); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data: err = %v, want ErrDataTooSmall", err)
	}
}

func TestSubSurfaceSharesStorage(t *testing.T) {
	root, _ := NewSurface(8, 6, false)
	view, err := root.SubSurface(2, 1, 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if view.Stride() != 8 || view.Offset() != 1*8+2 || view.Root() != root || !view.IsView() {
		t.Errorf("view stride %d offset %d", view.Stride(), view.Offset())
	}
	view.Pix()[1*view.Stride()+3] = 0xdeadbeef
	if got := root.RawPixel(5, 2); got != 0xdeadbeef {
		t.Errorf("root pixel (5,2) = %08x, want write through view", got)
	}

	nested, err := view.SubSurface(1, 1, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if nested.Root() != root || nested.Offset() != 2*8+3 {
		t.Errorf("nested view root/offset wrong: offset %d", nested.Offset())
	}

	if _, err := view.SubSurface(2, 2, 3, 3); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out of bounds view: err = %v", err)
	}
}

func TestCopies(t *testing.T) {
	root, _ := NewSurfaceFilled(4, 4, false, Red)
	view, _ := root.SubSurface(1, 1, 2, 2)

	shot := view.Screenshot()
	if shot.Stride() != 2 || shot.IsView() || !shot.IsMutable() {
		t.Errorf("screenshot stride %d view %v", shot.Stride(), shot.IsView())
	}
	shot.Pix()[0] = 0
	if root.RawPixel(1, 1) == 0 {
		t.Error("screenshot shares storage with the root")
	}

	imm := root.ImmutableCopy()
	if imm.IsMutable() {
		t.Error("ImmutableCopy is mutable")
	}
	if imm.ImmutableCopy() != imm {
		t.Error("ImmutableCopy of an immutable root should return itself")
	}
	if _, err := imm.NewGraphics(); !errors.Is(err, ErrImmutableSurface) {
		t.Errorf("NewGraphics on immutable: err = %v", err)
	}
	if m := imm.MutableCopy(); !m.IsMutable() || m.RawPixel(3, 3) != root.RawPixel(3, 3) {
		t.Error("MutableCopy lost pixels or mutability")
	}
}

func TestPixelAccessors(t *testing.T) {
	s, _ := NewSurfaceFilled(2, 1, false, RGBA(255, 0, 0, 128))
	if s.ColorAt(0, 0) != RGBA(255, 0, 0, 128) {
		t.Errorf("ColorAt = %08x", uint32(s.ColorAt(0, 0)))
	}
	if s.IsTransparent(0, 0) || !s.IsTransparent(5, 5) {
		t.Error("IsTransparent wrong")
	}
	if s.RawPixel(-1, 0) != 0 {
		t.Error("RawPixel outside should be 0")
	}
}

func TestImageInterop(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	src.Set(10, 10, color.NRGBA{R: 255, A: 255})
	src.Set(12, 11, color.NRGBA{B: 255, A: 128})

	s := FromImage(src)
	if s.IsMutable() || s.IsOpaque() {
		t.Errorf("FromImage mutable=%v opaque=%v", s.IsMutable(), s.IsOpaque())
	}
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size %dx%d", s.Width(), s.Height())
	}
	if s.RawPixel(0, 0) != 0xffff0000 || s.RawPixel(2, 1) != 0x80000080 {
		t.Errorf("pixels %08x %08x", s.RawPixel(0, 0), s.RawPixel(2, 1))
	}

	rgba := s.ToRGBA()
	if got := rgba.RGBAAt(2, 1); got != (color.RGBA{B: 128, A: 128}) {
		t.Errorf("ToRGBA pixel = %v", got)
	}
	if s.At(0, 0) != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("At(0,0) = %v", s.At(0, 0))
	}

	opaque := FromImage(image.NewGray(image.Rect(0, 0, 2, 2)))
	if !opaque.IsOpaque() {
		t.Error("gray image should import as opaque")
	}
}

func TestSavePNG(t *testing.T) {
	s, _ := NewSurfaceFilled(3, 3, true, Blue)
	if err := s.SavePNG(filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Fatal(err)
	}
}
