package export

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

var (
	fontOnce sync.Once
	fontErr  error
	textFont *sfnt.Font
)

// newFace builds a face of the bundled text font at the given pixel size.
// The font itself is parsed once.
func newFace(sizePx float64) (font.Face, error) {
	fontOnce.Do(func() {
		textFont, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("parse bundled font: %w", fontErr)
		}
	})
	if fontErr != nil {
		return nil, fontErr
	}
	face, err := opentype.NewFace(textFont, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build %.1fpx face: %w", sizePx, err)
	}
	return face, nil
}
