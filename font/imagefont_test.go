package font

import (
	"testing"

	"github.com/gogpu/softgfx"
)

func TestDefaultMetrics(t *testing.T) {
	f := Default()
	if f.Ascent() != 11 || f.Descent() != 2 || f.Height() != 13 {
		t.Errorf("metrics = %d/%d/%d, want 11/2/13", f.Ascent(), f.Descent(), f.Height())
	}
	if Default() != f {
		t.Error("Default() is rebuilt on every call")
	}
}

func TestStringWidth(t *testing.T) {
	f := Default()
	tests := []struct {
		name string
		s    string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "abc", 21},
		{"missing glyph", "a\u4e00", 14},
		{"decomposed accent", "e\u0301", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.StringWidth(tt.s); got != tt.want {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestGlyphLookup(t *testing.T) {
	f := Default()
	if !f.HasGlyph('A') {
		t.Fatal("no glyph for 'A'")
	}
	if f.HasGlyph('\u4e00') {
		t.Error("unexpected glyph for U+4E00")
	}
	if g := f.Glyph('\u4e00'); g == nil || g.Rune != Replacement {
		t.Errorf("Glyph(U+4E00) = %+v, want the replacement glyph", g)
	}
	g := f.Glyph('A')
	if g.Texture == nil || !g.Texture.IsView() || g.Texture.IsMutable() {
		t.Fatal("glyph texture should be an immutable atlas view")
	}
	if g.Texture.Root() != f.Atlas() {
		t.Error("glyph texture does not share the atlas")
	}
	if g.OffsetY != -11 || g.Advance != 7 {
		t.Errorf("offset/advance = %d/%d, want -11/7", g.OffsetY, g.Advance)
	}
}

func TestDraw(t *testing.T) {
	s, _ := softgfx.NewSurface(20, 20, false)
	g, err := s.NewGraphics()
	if err != nil {
		t.Fatal(err)
	}
	Default().Draw(g, "I", 2, 3)
	inked := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			p := s.RawPixel(x, y)
			if p == 0 {
				continue
			}
			if x < 2 || x >= 9 || y < 3 || y >= 16 {
				t.Fatalf("ink at (%d,%d) outside the glyph cell", x, y)
			}
			inked++
		}
	}
	if inked == 0 {
		t.Error("nothing drawn")
	}
}

func TestTint(t *testing.T) {
	red, err := Default().Tint(softgfx.Red)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := softgfx.NewSurface(40, 20, false)
	g, _ := s.NewGraphics()
	red.Draw(g, "Hi!", 0, 0)
	inked := false
	for _, p := range s.Pix() {
		if p&0xffff != 0 {
			t.Fatalf("tinted pixel %08x has green or blue", p)
		}
		inked = inked || p != 0
	}
	if !inked {
		t.Error("nothing drawn")
	}
	if red.Glyph('H').Texture.Root() == Default().Atlas() {
		t.Error("tinted font shares the original atlas")
	}
}

func TestGoRegular(t *testing.T) {
	f, err := GoRegular(16)
	if err != nil {
		t.Fatal(err)
	}
	if !f.HasGlyph('\u00e9') || !f.HasGlyph('A') {
		t.Error("missing Latin-1 glyphs")
	}
	if f.Height() <= 0 || f.Ascent() <= 0 {
		t.Errorf("metrics = %d/%d", f.Height(), f.Ascent())
	}
	if w := f.StringWidth("Hello"); w <= 0 {
		t.Errorf("StringWidth = %d", w)
	}
	if again, _ := GoRegular(16); again != f {
		t.Error("GoRegular(16) was rebuilt")
	}
	if _, err := GoRegular(0); err == nil {
		t.Error("GoRegular(0) succeeded")
	}
}

func TestNewImageFontErrors(t *testing.T) {
	if _, err := NewImageFont(nil, ASCII); err == nil {
		t.Error("nil face accepted")
	}
	if _, err := NewImageFontFromTTF([]byte("not a font"), 12); err == nil {
		t.Error("garbage data accepted")
	}
}
