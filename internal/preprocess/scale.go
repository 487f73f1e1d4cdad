package preprocess

import (
	"image"

	"github.com/disintegration/imaging"
)

// Scales is the fixed scale sweep, in iteration order. The order affects only
// which duplicate sighting the fuser encounters first, not correctness, but
// it must stay stable for reproducible output.
var Scales = []float64{1.25, 1.0, 0.75}

// Rescale returns img resized by factor. A factor of exactly 1.0 returns img
// itself, untouched, so the best case never pays a resample round-trip.
//
// Target dimensions are truncated (int(dim * factor)). Upscaling uses a
// Catmull-Rom (bicubic family) filter, downscaling uses box averaging; both
// are deterministic for a fixed factor and source size.
func Rescale(img image.Image, factor float64) image.Image {
	if factor == 1.0 {
		return img
	}

	bounds := img.Bounds()
	width := int(float64(bounds.Dx()) * factor)
	height := int(float64(bounds.Dy()) * factor)

	filter := imaging.Box
	if factor > 1.0 {
		filter = imaging.CatmullRom
	}
	return imaging.Resize(img, width, height, filter)
}
