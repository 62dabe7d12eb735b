package softgfx

import (
	"errors"
	"testing"
)

func TestNewTiledImage(t *testing.T) {
	src, _ := NewSurface(10, 7, false)
	img, err := NewTiledImage(src, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	cols, rows := img.Tiles()
	if cols != 3 || rows != 2 {
		t.Fatalf("Tiles() = %d,%d, want 3,2", cols, rows)
	}
	if img.Width() != 10 || img.Height() != 7 {
		t.Errorf("size = %dx%d", img.Width(), img.Height())
	}
	last := img.Tile(2, 1)
	if last.Width() != 2 || last.Height() != 3 {
		t.Errorf("last tile = %dx%d, want 2x3", last.Width(), last.Height())
	}
	src.Pix()[6*src.Stride()+9] = 0xff123456
	if got := last.RawPixel(1, 2); got != 0xff123456 {
		t.Errorf("tile does not share storage: %08x", got)
	}

	for _, tc := range []struct{ w, h int }{{0, 4}, {4, -1}} {
		if _, err := NewTiledImage(src, tc.w, tc.h); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewTiledImage(%d,%d) err = %v", tc.w, tc.h, err)
		}
	}
}

func TestDrawImageIdentityMatchesTexture(t *testing.T) {
	src := patternSurface(t, 9, 9, true)
	img, err := NewTiledImage(src, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	want, gw := newTestGraphics(t, 12, 12, false)
	got, gg := newTestGraphics(t, 12, 12, false)
	gw.DrawTextureAt(src, 2, 1)
	gg.DrawImageAt(img, 2, 1)
	for i := range want.Pix() {
		if want.Pix()[i] != got.Pix()[i] {
			t.Fatalf("pixel %d = %08x, want %08x", i, got.Pix()[i], want.Pix()[i])
		}
	}
}

func TestDrawImageScaledHasNoSeams(t *testing.T) {
	src, _ := NewSurfaceFilled(8, 8, false, White)
	img, err := NewTiledImage(src, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	dst, g := newTestGraphics(t, 16, 16, false)
	g.SetEdgeClamp(EdgeClampAll)
	g.Translate(0.25, 0.25)
	g.Scale(1.5, 1.5)
	g.DrawImage(img)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := uint32(0)
			if x < 12 && y < 12 {
				want = 0xffffffff
			}
			if got := dst.RawPixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %08x, want %08x", x, y, got, want)
			}
		}
	}
}
