// Command softgfxdemo renders a sample scene with the softgfx rasterizer.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/softgfx"
	"github.com/gogpu/softgfx/filter"
	"github.com/gogpu/softgfx/font"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 480, "image height")
		output  = flag.String("output", "demo.png", "output file (.png or .bmp)")
		bilin   = flag.Bool("bilinear", true, "bilinear texture sampling")
		verbose = flag.Bool("v", false, "log skipped draws")
	)
	flag.Parse()

	if *verbose {
		softgfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	s, err := softgfx.NewSurface(*width, *height, true)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	g, err := s.NewGraphics()
	if err != nil {
		log.Fatalf("Failed to create graphics: %v", err)
	}
	if !*bilin {
		g.SetInterpolation(softgfx.NearestNeighbor)
	}

	drawBackground(g, *width, *height)
	drawRects(g)
	drawLines(g)
	if err := drawTextures(g); err != nil {
		log.Fatalf("Failed to draw textures: %v", err)
	}
	drawText(g)

	if err := save(s, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func drawBackground(g *softgfx.Graphics, w, h int) {
	const steps = 32
	for i := 0; i < steps; i++ {
		t := float64(i) / steps
		g.SetColor(softgfx.RGB(int(25+t*80), int(50+t*60), int(100+t*40)))
		g.FillRectAt(0, float64(h)*t, float64(w), float64(h)/steps+1)
	}
}

func drawRects(g *softgfx.Graphics) {
	g.SetColor(softgfx.RGBA(255, 80, 80, 200))
	g.FillRectAt(40.5, 40.25, 120, 80)

	g.PushTransform()
	g.Translate(300, 90)
	for i := 0; i < 6; i++ {
		g.PushTransform()
		g.Rotate(float64(i) * math.Pi / 12)
		g.SetColor(softgfx.RGBA(80, 200, 255, 60))
		g.FillRectAt(-50, -50, 100, 100)
		_ = g.PopTransform()
	}
	_ = g.PopTransform()

	g.SetColor(softgfx.White)
	g.DrawRect(40, 40, 121, 81)
}

func drawLines(g *softgfx.Graphics) {
	g.SetColor(softgfx.Yellow)
	cx, cy := 520.0, 110.0
	for i := 0; i < 24; i++ {
		a := float64(i) * 2 * math.Pi / 24
		g.DrawLine(cx, cy, cx+80*math.Cos(a), cy+80*math.Sin(a))
	}
}

func drawTextures(g *softgfx.Graphics) error {
	tex, err := softgfx.NewSurface(32, 32, false)
	if err != nil {
		return err
	}
	tg, err := tex.NewGraphics()
	if err != nil {
		return err
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x+y)%2 == 0 {
				tg.SetColor(softgfx.Magenta)
			} else {
				tg.SetColor(softgfx.Cyan)
			}
			tg.FillRectAt(float64(x*8), float64(y*8), 8, 8)
		}
	}

	shadow := filter.NewDropShadow(4, 4)
	withShadow, err := shadow.Apply(tex)
	if err != nil {
		return err
	}
	left, top, _, _ := shadow.Margin()

	g.DrawTextureAt(withShadow, float64(40-left), float64(200-top))

	g.PushTransform()
	g.Translate(140, 200)
	g.Scale(2.5, 2.5)
	g.DrawTexture(tex)
	_ = g.PopTransform()

	g.PushTransform()
	g.Translate(330, 240)
	g.Rotate(math.Pi / 7)
	g.Scale(2, 2)
	g.SetAlpha(200)
	g.DrawTextureAt(tex, -16, -16)
	g.SetAlpha(255)
	_ = g.PopTransform()

	tiles, err := softgfx.NewTiledImage(tex, 16, 16)
	if err != nil {
		return err
	}
	g.PushTransform()
	g.Translate(460, 200)
	g.Rotate(-math.Pi / 9)
	g.Scale(3, 3)
	g.SetEdgeClamp(softgfx.EdgeClampAll)
	g.DrawImage(tiles)
	g.SetEdgeClamp(softgfx.EdgeClampNone)
	_ = g.PopTransform()
	return nil
}

func drawText(g *softgfx.Graphics) {
	f, err := font.Default().Tint(softgfx.White)
	if err != nil {
		log.Printf("Failed to tint font: %v", err)
		return
	}
	f.Draw(g, "softgfx: fixed-point software rasterizer", 40, 400)
	if big, err := font.GoRegular(20); err == nil {
		big.Draw(g, "Résumé naïve café", 40, 420)
	}
}

func save(s *softgfx.Surface, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := bmp.Encode(f, s.ToRGBA()); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	case ".png", "":
		return s.SavePNG(path)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}
