package softgfx

import "fmt"

// TiledImage is an image split into a grid of tiles that are views of one
// source surface. Drawing it clamps the edges shared between tiles so no
// seams appear under scaling or rotation.
type TiledImage struct {
	width, height int
	tileW, tileH  int
	cols, rows    int
	tiles         []*Surface
}

// NewTiledImage splits src into tiles of at most tileW×tileH pixels. The
// tiles share src's storage.
func NewTiledImage(src *Surface, tileW, tileH int) (*TiledImage, error) {
	if src == nil || tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("%w: tile %dx%d", ErrInvalidDimensions, tileW, tileH)
	}
	img := &TiledImage{
		width:  src.width,
		height: src.height,
		tileW:  tileW,
		tileH:  tileH,
		cols:   (src.width + tileW - 1) / tileW,
		rows:   (src.height + tileH - 1) / tileH,
	}
	img.tiles = make([]*Surface, 0, img.cols*img.rows)
	for row := 0; row < img.rows; row++ {
		for col := 0; col < img.cols; col++ {
			x, y := col*tileW, row*tileH
			t, err := src.SubSurface(x, y, min(tileW, src.width-x), min(tileH, src.height-y))
			if err != nil {
				return nil, err
			}
			img.tiles = append(img.tiles, t)
		}
	}
	return img, nil
}

// Width returns the full image width.
func (img *TiledImage) Width() int { return img.width }

// Height returns the full image height.
func (img *TiledImage) Height() int { return img.height }

// Tiles returns the number of tile columns and rows.
func (img *TiledImage) Tiles() (cols, rows int) { return img.cols, img.rows }

// Tile returns the tile at the given column and row.
func (img *TiledImage) Tile(col, row int) *Surface {
	return img.tiles[row*img.cols+col]
}

// DrawImage draws img with its top-left corner at the user-space origin.
// Outer edges follow the current edge clamp; inner edges are always hard.
func (g *Graphics) DrawImage(img *TiledImage) {
	g.DrawImageAt(img, 0, 0)
}

// DrawImageAt draws img with its top-left corner at (x, y) in user space.
func (g *Graphics) DrawImageAt(img *TiledImage, x, y float64) {
	if img == nil {
		return
	}
	base := g.top()
	for row := 0; row < img.rows; row++ {
		for col := 0; col < img.cols; col++ {
			clamp := g.edgeClamp
			if col > 0 {
				clamp |= EdgeClampLeft
			}
			if col < img.cols-1 {
				clamp |= EdgeClampRight
			}
			if row > 0 {
				clamp |= EdgeClampTop
			}
			if row < img.rows-1 {
				clamp |= EdgeClampBottom
			}
			t := base.Translate(x+float64(col*img.tileW), y+float64(row*img.tileH))
			g.drawTexture(img.Tile(col, row), t, clamp)
		}
	}
}
