//go:build !gocv

package marker

import (
	"errors"
	"image"
)

var errDetectorUnavailable = errors.New("marker detection requires a binary built with the gocv tag (OpenCV + aruco)")

// NewDetector returns a stub when the binary is built without the gocv tag.
// Every Detect call fails with an explanatory error, which the runner treats
// as fatal on the first triple.
func NewDetector() Detector {
	return unavailableDetector{}
}

type unavailableDetector struct{}

func (unavailableDetector) Detect(image.Image, Config) (*Result, error) {
	return nil, errDetectorUnavailable
}
