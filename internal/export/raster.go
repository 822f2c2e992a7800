package export

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"GeoBoard/internal/overlay"
	"GeoBoard/internal/render"
)

// Raster composes the scene into a fixed-resolution pixel image: background
// fill, a full repaint of the committed strokes, then each text box in
// ascending z-order so later-focused boxes end up on top, matching the
// on-screen stacking.
func Raster(sc Scene) (*image.NRGBA, error) {
	eng := render.NewEngine(sc.Width, sc.Height, sc.Scale)
	eng.Repaint(sc.Strokes)
	ink := eng.Ink()

	img := image.NewNRGBA(ink.Rect)
	draw.Draw(img, img.Rect, image.NewUniform(sc.Background), image.Point{}, draw.Src)
	draw.Draw(img, img.Rect, ink, image.Point{}, draw.Over)

	scale := eng.Scale()
	for _, b := range sc.Boxes {
		if err := drawBoxText(img, b, scale); err != nil {
			return nil, err
		}
	}
	return img, nil
}

func drawBoxText(img *image.NRGBA, b *overlay.Box, scale float64) error {
	face, err := newFace(b.FontSize * scale)
	if err != nil {
		return err
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(b.Color),
		Face: face,
	}
	ascent := face.Metrics().Ascent
	lineH := b.FontSize * overlay.LineSpacing
	for i, line := range b.Lines() {
		top := (b.Y + float64(i)*lineH) * scale
		d.Dot = fixed.Point26_6{
			X: toFixed(b.X * scale),
			Y: toFixed(top) + ascent,
		}
		d.DrawString(line)
	}
	return nil
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// EncodePNG writes the image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG renders the scene and writes it to a file in one step.
func SavePNG(path string, sc Scene) error {
	img, err := Raster(sc)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return EncodePNG(f, img)
}
