// Package render draws fused marker observations onto the original image and
// persists the result.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/rodlab/tagbench/internal/fusion"
)

var markerFont *truetype.Font

// init parses the bundled font once.
func init() {
	var err error
	markerFont, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

var (
	outlineColor = color.RGBA{0, 0, 0, 255}
	accentColor  = color.RGBA{0, 255, 0, 255}
	cornerColor  = color.RGBA{255, 0, 0, 255}
)

const (
	labelFontSize   = 28
	overlayFontSize = 64

	// Fixed position of the total-count overlay (text baseline).
	overlayX = 50
	overlayY = 100
)

// Annotate draws each observation's quadrilateral and identity label onto a
// copy of src, plus a fixed-position overlay with the total fused count. The
// count overlay is drawn even when there are zero observations. src itself is
// never modified.
func Annotate(src image.Image, observations []fusion.Observation) image.Image {
	dc := gg.NewContextForImage(src)

	for _, obs := range observations {
		drawQuad(dc, obs)
		drawOutlinedText(dc, fmt.Sprintf("ID:%d", obs.ID), obs.Center.X-40, obs.Center.Y+10, labelFontSize)
	}

	drawOutlinedText(dc, fmt.Sprintf("Tags detected: %d", len(observations)), overlayX, overlayY, overlayFontSize)

	return dc.Image()
}

// Save persists the annotated image to path; the raster format follows the
// file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save annotated image: %w", err)
	}
	return nil
}

// drawQuad strokes the marker outline and fills a dot on the first corner so
// marker orientation stays visible.
func drawQuad(dc *gg.Context, obs fusion.Observation) {
	dc.SetColor(accentColor)
	dc.SetLineWidth(3)
	dc.MoveTo(obs.Corners[0].X, obs.Corners[0].Y)
	for _, p := range obs.Corners[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.Stroke()

	dc.SetColor(cornerColor)
	dc.DrawCircle(obs.Corners[0].X, obs.Corners[0].Y, 4)
	dc.Fill()
}

// drawOutlinedText draws text twice: a black pass offset in eight directions
// to fake a stroke outline, then the green fill on top, so labels stay
// legible against any background.
func drawOutlinedText(dc *gg.Context, text string, x, y, size float64) {
	dc.SetFontFace(truetype.NewFace(markerFont, &truetype.Options{Size: size}))

	dc.SetColor(outlineColor)
	for dy := -2.0; dy <= 2.0; dy += 2 {
		for dx := -2.0; dx <= 2.0; dx += 2 {
			if dx == 0 && dy == 0 {
				continue
			}
			dc.DrawString(text, x+dx, y+dy)
		}
	}

	dc.SetColor(accentColor)
	dc.DrawString(text, x, y)
}
