package preprocess

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Load decodes the image file at path. Supported formats are PNG and JPEG,
// including images with an alpha channel.
//
// A file that cannot be opened or decoded fails the whole pass: there is no
// partial-image fallback, and no output files should be written after this
// returns an error.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}
