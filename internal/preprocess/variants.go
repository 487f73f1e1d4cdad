package preprocess

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/effect"
)

// Variant is one preprocessed rendition of the source image, identified by a
// stable name that appears in combination labels and reports.
type Variant struct {
	Name  string
	Image image.Image
}

// sharpenKernel is a 3x3 high-pass kernel: center weight 9, neighbors -1.
// Weights sum to 1, so flat regions pass through unchanged.
var sharpenKernel = convolution.Kernel{
	Matrix: []float64{
		-1, -1, -1,
		-1, 9, -1,
		-1, -1, -1,
	},
	Width:  3,
	Height: 3,
}

// denoiseRadius is the median filter radius for the denoised variant.
const denoiseRadius = 3.0

// BuildVariants produces the fixed ordered set of preprocessed renditions of
// img. The order is part of the sweep contract (it decides which duplicate
// sighting is encountered first):
//
//  1. "Original" - the source image, alpha flattened to opaque
//  2. "CLAHE" - tile-based contrast-limited histogram equalization on a
//     grayscale derivation, re-expanded to three channels
//  3. "Denoised" - edge-preserving median smoothing
//  4. "Sharpened" - the 3x3 high-pass kernel above
//
// All variants have the same dimensions as img.
func BuildVariants(img image.Image) []Variant {
	base := Flatten(img)
	return []Variant{
		{Name: "Original", Image: base},
		{Name: "CLAHE", Image: equalizeLocalContrast(base)},
		{Name: "Denoised", Image: effect.Median(base, denoiseRadius)},
		{Name: "Sharpened", Image: convolution.Convolve(base, &sharpenKernel, &convolution.Options{Bias: 0, Wrap: false, KeepAlpha: false})},
	}
}

// Flatten returns an opaque RGBA copy of img. The alpha channel, if any, is
// discarded rather than composited, so color channels survive untouched and
// downstream handling never sees transparency.
func Flatten(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)

	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xFF
	}
	return out
}
