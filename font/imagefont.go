package font

import (
	"fmt"
	"image"
	"slices"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	i26 "golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/softgfx"
	"github.com/gogpu/softgfx/internal/cache"
)

// Replacement is drawn for runes the font has no glyph for.
const Replacement = '\uFFFD'

const (
	atlasWidth = 512
	glyphPad   = 1
)

// ASCII holds the printable ASCII runes.
var ASCII = runeRange(0x20, 0x7e)

// Latin1 holds printable ASCII plus the printable Latin-1 supplement.
var Latin1 = append(runeRange(0x20, 0x7e), runeRange(0xa0, 0xff)...)

func runeRange(lo, hi rune) []rune {
	rs := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		rs = append(rs, r)
	}
	return rs
}

// Glyph is one character of an ImageFont.
type Glyph struct {
	Rune rune

	// Texture is a view of the font atlas, nil for blank glyphs.
	Texture *softgfx.Surface

	// OffsetX and OffsetY locate the texture's top-left corner relative to
	// the pen position on the baseline.
	OffsetX, OffsetY int

	// Advance is how far the pen moves after this glyph.
	Advance int

	atlas image.Rectangle
	kern  map[rune]int
}

// Kern returns the adjustment applied between g and next.
func (g *Glyph) Kern(next rune) int {
	return g.kern[next]
}

// ImageFont is a bitmap font backed by one atlas surface. It is immutable
// and safe for concurrent use.
type ImageFont struct {
	glyphs      map[rune]*Glyph
	replacement *Glyph
	atlas       *softgfx.Surface

	ascent, descent, height int
}

var defaultFont = sync.OnceValue(func() *ImageFont {
	f, err := NewImageFont(basicfont.Face7x13, ASCII)
	if err != nil {
		panic(fmt.Sprintf("font: default face: %v", err))
	}
	return f
})

// Default returns the built-in 7x13 fixed-width font covering ASCII.
func Default() *ImageFont {
	return defaultFont()
}

var goRegular = cache.New[float64, *ImageFont](8)

// GoRegular returns the Go Regular typeface rasterized at size pixels per
// em. Recently used sizes are shared between callers.
func GoRegular(size float64) (*ImageFont, error) {
	return goRegular.GetOrCreate(size, func() (*ImageFont, error) {
		return NewImageFontFromTTF(goregular.TTF, size)
	})
}

// NewImageFontFromTTF rasterizes TrueType or OpenType data at size pixels
// per em, covering Latin1.
func NewImageFontFromTTF(data []byte, size float64) (*ImageFont, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font: invalid size %v", size)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font: failed to create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()
	return NewImageFont(face, Latin1)
}

// NewImageFont rasterizes the given runes of face into a new font. Runes
// the face lacks are left out. Replacement is added when the face has it.
func NewImageFont(face xfont.Face, runes []rune) (*ImageFont, error) {
	if face == nil {
		return nil, fmt.Errorf("font: nil face")
	}
	runes = slices.Clone(runes)
	runes = append(runes, Replacement)
	slices.Sort(runes)
	runes = slices.Compact(runes)

	m := face.Metrics()
	f := &ImageFont{
		glyphs:  make(map[rune]*Glyph, len(runes)),
		ascent:  m.Ascent.Ceil(),
		descent: m.Descent.Ceil(),
		height:  m.Height.Ceil(),
	}

	// Shelf-pack the glyph boxes.
	var order []*Glyph
	x, y, shelf := 0, 0, 0
	for _, r := range runes {
		b, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		ib := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
		g := &Glyph{Rune: r, OffsetX: ib.Min.X, OffsetY: ib.Min.Y, Advance: adv.Round()}
		if !ib.Empty() {
			if x+ib.Dx() > atlasWidth && x > 0 {
				x, y, shelf = 0, y+shelf+glyphPad, 0
			}
			g.atlas = image.Rect(x, y, x+ib.Dx(), y+ib.Dy())
			x += ib.Dx() + glyphPad
			shelf = max(shelf, ib.Dy())
		}
		f.glyphs[r] = g
		order = append(order, g)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("font: face has none of the %d requested glyphs", len(runes))
	}

	w, h := 1, max(y+shelf, 1)
	for _, g := range order {
		w = max(w, g.atlas.Max.X)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	d := xfont.Drawer{Dst: dst, Src: image.White, Face: face}
	for _, g := range order {
		if g.atlas.Empty() {
			continue
		}
		d.Dot = i26.P(g.atlas.Min.X-g.OffsetX, g.atlas.Min.Y-g.OffsetY)
		d.DrawString(string(g.Rune))
	}
	f.atlas = softgfx.FromImage(dst)
	if err := f.slice(); err != nil {
		return nil, err
	}

	for _, g := range order {
		for _, next := range order {
			if k := face.Kern(g.Rune, next.Rune).Round(); k != 0 {
				if g.kern == nil {
					g.kern = make(map[rune]int)
				}
				g.kern[next.Rune] = k
			}
		}
	}

	f.replacement = f.glyphs[Replacement]
	if f.replacement == nil {
		f.replacement = f.glyphs['?']
	}
	if f.replacement == nil {
		f.replacement = order[len(order)-1]
	}
	return f, nil
}

// slice points every glyph texture at its rectangle of the atlas.
func (f *ImageFont) slice() error {
	for _, g := range f.glyphs {
		if g.atlas.Empty() {
			g.Texture = nil
			continue
		}
		t, err := f.atlas.SubSurface(g.atlas.Min.X, g.atlas.Min.Y, g.atlas.Dx(), g.atlas.Dy())
		if err != nil {
			return fmt.Errorf("font: glyph %q: %w", g.Rune, err)
		}
		g.Texture = t
	}
	return nil
}

// Tint returns a copy of f whose glyphs are drawn in c instead of white.
func (f *ImageFont) Tint(c softgfx.Color) (*ImageFont, error) {
	t := &ImageFont{
		glyphs:  make(map[rune]*Glyph, len(f.glyphs)),
		atlas:   f.atlas.Tint(c).ImmutableCopy(),
		ascent:  f.ascent,
		descent: f.descent,
		height:  f.height,
	}
	for r, g := range f.glyphs {
		cp := *g
		t.glyphs[r] = &cp
	}
	t.replacement = t.glyphs[f.replacement.Rune]
	if err := t.slice(); err != nil {
		return nil, err
	}
	return t, nil
}

// Ascent returns the distance from the top of a line to the baseline.
func (f *ImageFont) Ascent() int { return f.ascent }

// Descent returns the distance from the baseline to the bottom of a line.
func (f *ImageFont) Descent() int { return f.descent }

// Height returns the recommended line spacing.
func (f *ImageFont) Height() int { return f.height }

// Atlas returns the surface holding every glyph.
func (f *ImageFont) Atlas() *softgfx.Surface { return f.atlas }

// HasGlyph reports whether r has its own glyph.
func (f *ImageFont) HasGlyph(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// Glyph returns the glyph for r, or the replacement glyph.
func (f *ImageFont) Glyph(r rune) *Glyph {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.replacement
}

// StringWidth returns the advance of s in pixels, kerning included.
func (f *ImageFont) StringWidth(s string) int {
	w := 0
	f.layout(s, func(_ *Glyph, _ int) {}, &w)
	return w
}

// Draw draws s as a single line with the top of its line box at (x, y)
// in the user space of g.
func (f *ImageFont) Draw(g *softgfx.Graphics, s string, x, y float64) {
	base := y + float64(f.ascent)
	f.layout(s, func(gl *Glyph, pen int) {
		if gl.Texture != nil {
			g.DrawTextureAt(gl.Texture, x+float64(pen+gl.OffsetX), base+float64(gl.OffsetY))
		}
	}, nil)
}

// layout walks the NFC form of s, calling fn with each glyph and its pen
// position. The final pen position is stored in end when non-nil.
func (f *ImageFont) layout(s string, fn func(g *Glyph, pen int), end *int) {
	s = norm.NFC.String(s)
	pen := 0
	var prev *Glyph
	for _, r := range s {
		g := f.Glyph(r)
		if prev != nil {
			pen += prev.Kern(r)
		}
		fn(g, pen)
		pen += g.Advance
		prev = g
	}
	if end != nil {
		*end = pen
	}
}
