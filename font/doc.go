// Package font draws text with bitmap fonts whose glyphs are textures.
//
// An ImageFont rasterizes every glyph once, through golang.org/x/image/font,
// into a single immutable atlas surface. Each glyph is a view of that
// atlas, so drawing a string is a sequence of texture blits through
// softgfx.Graphics and follows its transform, clip, alpha and blend mode.
//
// Default returns a font built from the fixed 7x13 face in basicfont.
// NewImageFontFromTTF and GoRegular rasterize TrueType or OpenType data
// at a given pixel size.
package font
