package preprocess

import (
	"image"
	"math"
)

const (
	// claheTileGrid is the number of equalization tiles per axis.
	claheTileGrid = 8

	// claheClipLimit caps each histogram bin at this multiple of the uniform
	// bin height before equalization, bounding noise amplification in flat
	// regions.
	claheClipLimit = 3.0
)

// equalizeLocalContrast applies contrast-limited adaptive histogram
// equalization to a grayscale derivation of img.
//
// The image is divided into an 8x8 tile grid. Each tile gets its own clipped
// histogram-equalization mapping, and every pixel is remapped by bilinearly
// blending the mappings of the four nearest tile centers, which removes the
// block seams plain per-tile equalization would leave.
//
// The result is re-expanded to three identical channels so downstream
// handling stays uniform across variants.
func equalizeLocalContrast(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Grayscale derivation using ITU-R BT.601 luminance weights.
	gray := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			gray[y*width+x] = uint8(float64(r>>8)*0.299 + float64(g>>8)*0.587 + float64(b>>8)*0.114)
		}
	}

	tileW := (width + claheTileGrid - 1) / claheTileGrid
	tileH := (height + claheTileGrid - 1) / claheTileGrid
	if tileW < 1 {
		tileW = 1
	}
	if tileH < 1 {
		tileH = 1
	}
	tilesX := (width + tileW - 1) / tileW
	tilesY := (height + tileH - 1) / tileH

	luts := make([][256]uint8, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tileW
			y0 := ty * tileH
			x1 := minInt(x0+tileW, width)
			y1 := minInt(y0+tileH, height)
			luts[ty*tilesX+tx] = tileMapping(gray, width, x0, y0, x1, y1)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		fy := (float64(y)+0.5)/float64(tileH) - 0.5
		ty0 := int(math.Floor(fy))
		wy := fy - float64(ty0)
		tyLo := clampInt(ty0, 0, tilesY-1)
		tyHi := clampInt(ty0+1, 0, tilesY-1)

		for x := 0; x < width; x++ {
			fx := (float64(x)+0.5)/float64(tileW) - 0.5
			tx0 := int(math.Floor(fx))
			wx := fx - float64(tx0)
			txLo := clampInt(tx0, 0, tilesX-1)
			txHi := clampInt(tx0+1, 0, tilesX-1)

			v := gray[y*width+x]
			top := (1-wx)*float64(luts[tyLo*tilesX+txLo][v]) + wx*float64(luts[tyLo*tilesX+txHi][v])
			bottom := (1-wx)*float64(luts[tyHi*tilesX+txLo][v]) + wx*float64(luts[tyHi*tilesX+txHi][v])
			blended := uint8(clampFloat((1-wy)*top+wy*bottom, 0, 255))

			i := out.PixOffset(x, y)
			out.Pix[i] = blended
			out.Pix[i+1] = blended
			out.Pix[i+2] = blended
			out.Pix[i+3] = 0xFF
		}
	}
	return out
}

// tileMapping builds the clipped-equalization lookup table for one tile.
//
// Bins above the clip limit are capped and the excess is redistributed evenly
// across all 256 bins before the cumulative mapping is computed.
func tileMapping(gray []uint8, stride, x0, y0, x1, y1 int) [256]uint8 {
	var hist [256]int
	total := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			hist[gray[y*stride+x]]++
			total++
		}
	}

	var lut [256]uint8
	if total == 0 {
		for i := range lut {
			lut[i] = uint8(i)
		}
		return lut
	}

	clip := int(claheClipLimit * float64(total) / 256.0)
	if clip < 1 {
		clip = 1
	}
	excess := 0
	for i := range hist {
		if hist[i] > clip {
			excess += hist[i] - clip
			hist[i] = clip
		}
	}
	redist := excess / 256
	rem := excess % 256
	for i := range hist {
		hist[i] += redist
		if i < rem {
			hist[i]++
		}
	}

	cum := 0
	for i := range hist {
		cum += hist[i]
		lut[i] = uint8(math.Round(255.0 * float64(cum) / float64(total)))
	}
	return lut
}

// clampInt constrains an integer value to the range [min, max].
func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// clampFloat constrains a float value to the range [min, max].
func clampFloat(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
