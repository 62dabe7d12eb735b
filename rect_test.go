package softgfx

import (
	"math"
	"testing"
)

func TestFillRectFastPath(t *testing.T) {
	s, g := newTestGraphics(t, 6, 6, false)
	g.SetColor(Blue)
	g.FillRectAt(1, 2, 3, 2)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := uint32(0)
			if x >= 1 && x < 4 && y >= 2 && y < 4 {
				want = 0xff0000ff
			}
			if got := s.RawPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %08x, want %08x", x, y, got, want)
			}
		}
	}
}

func TestFillRectNegativeSize(t *testing.T) {
	a, ga := newTestGraphics(t, 6, 6, false)
	b, gb := newTestGraphics(t, 6, 6, false)
	ga.FillRectAt(1, 1, 3, 3)
	gb.FillRectAt(4, 4, -3, -3)
	for i := range a.Pix() {
		if a.Pix()[i] != b.Pix()[i] {
			t.Fatalf("pixel %d differs: %08x vs %08x", i, a.Pix()[i], b.Pix()[i])
		}
	}
}

func TestFillRectZeroSize(t *testing.T) {
	s, g := newTestGraphics(t, 4, 4, false)
	g.FillRect(0, 3)
	g.FillRect(3, 0)
	for _, p := range s.Pix() {
		if p != 0 {
			t.Fatal("zero-size rect drew pixels")
		}
	}
}

func TestFillRectAntiAliased(t *testing.T) {
	s, g := newTestGraphics(t, 4, 3, false)
	g.SetColor(White)
	// Covers x in [0.5, 2.5], y in [0, 1.5].
	g.FillRectAt(0.5, 0, 2, 1.5)
	tests := []struct {
		x, y  int
		alpha uint32
	}{
		{0, 0, 128}, {1, 0, 255}, {2, 0, 128}, {3, 0, 0},
		{0, 1, 64}, {1, 1, 128}, {2, 1, 64},
		{1, 2, 0},
	}
	for _, tt := range tests {
		if got := s.RawPixel(tt.x, tt.y) >> 24; got != tt.alpha {
			t.Errorf("alpha at (%d,%d) = %d, want %d", tt.x, tt.y, got, tt.alpha)
		}
	}
}

func TestFillRectRotated(t *testing.T) {
	s, g := newTestGraphics(t, 20, 20, false)
	g.SetColor(White)
	g.RotateAbout(math.Pi/4, 10, 10)
	g.FillRectAt(5, 5, 10, 10)

	// The centre is deep inside, the corners of the surface are outside.
	if got := s.RawPixel(10, 10); got != 0xffffffff {
		t.Errorf("centre = %08x, want opaque white", got)
	}
	for _, p := range [][2]int{{0, 0}, {19, 0}, {0, 19}, {19, 19}, {4, 4}} {
		if got := s.RawPixel(p[0], p[1]); got != 0 {
			t.Errorf("pixel %v = %08x, want untouched", p, got)
		}
	}
	// Total coverage approximates the area of the square.
	sum := 0
	for _, p := range s.Pix() {
		sum += int(p >> 24)
	}
	area := float64(sum) / 255
	if math.Abs(area-100) > 3 {
		t.Errorf("covered area = %.1f, want ~100", area)
	}
}

func TestFillRectRotatedMatchesAxisAligned(t *testing.T) {
	a, ga := newTestGraphics(t, 12, 12, false)
	b, gb := newTestGraphics(t, 12, 12, false)
	ga.FillRectAt(2.25, 3.5, 6.5, 4)
	gb.Rotate(2 * math.Pi)
	gb.FillRectAt(2.25, 3.5, 6.5, 4)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			pa, pb := int(a.RawPixel(x, y)>>24), int(b.RawPixel(x, y)>>24)
			if absInt(pa-pb) > 2 {
				t.Errorf("(%d,%d): axis-aligned %d, rotated %d", x, y, pa, pb)
			}
		}
	}
}

func TestDrawRect(t *testing.T) {
	s, g := newTestGraphics(t, 6, 6, false)
	g.SetColor(Red)
	g.DrawRect(1, 1, 4, 4)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			edge := (x == 1 || x == 4) && y >= 1 && y <= 4 || (y == 1 || y == 4) && x >= 1 && x <= 4
			want := uint32(0)
			if edge {
				want = 0xffff0000
			}
			if got := s.RawPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %08x, want %08x", x, y, got, want)
			}
		}
	}
}

func BenchmarkFillRectAA(b *testing.B) {
	s, _ := NewSurface(256, 256, true)
	g, _ := s.NewGraphics()
	g.SetColor(RGBA(10, 200, 30, 180))
	for i := 0; i < b.N; i++ {
		g.FillRectAt(3.3, 4.7, 200.2, 180.6)
	}
}
