//go:build gocv

package marker

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// NewDetector returns the OpenCV-backed ArUco detector over the 4x4_50
// dictionary. Requires OpenCV with the aruco contrib module at link time.
func NewDetector() Detector {
	return &gocvDetector{}
}

type gocvDetector struct{}

// Detect converts img to a Mat and runs one ArUco detection pass with the
// profile's parameters applied.
func (d *gocvDetector) Detect(img image.Image, cfg Config) (*Result, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to mat: %w", err)
	}
	defer mat.Close()

	params := gocv.NewArucoDetectorParameters()
	params.SetAdaptiveThreshWinSizeMin(cfg.AdaptiveThreshWinSizeMin)
	params.SetAdaptiveThreshWinSizeMax(cfg.AdaptiveThreshWinSizeMax)
	params.SetAdaptiveThreshWinSizeStep(cfg.AdaptiveThreshWinSizeStep)
	params.SetMinMarkerPerimeterRate(cfg.MinMarkerPerimeterRate)
	params.SetMaxMarkerPerimeterRate(cfg.MaxMarkerPerimeterRate)
	params.SetPolygonalApproxAccuracyRate(cfg.PolygonalApproxAccuracyRate)
	params.SetCornerRefinementMethod(cornerRefinementCode(cfg.CornerRefinement))
	params.SetCornerRefinementWinSize(cfg.CornerRefinementWinSize)
	params.SetCornerRefinementMaxIterations(cfg.CornerRefinementMaxIterations)
	params.SetMinDistanceToBorder(cfg.MinDistanceToBorder)
	params.SetMinOtsuStdDev(cfg.MinOtsuStdDev)
	params.SetPerspectiveRemoveIgnoredMarginPerCell(cfg.PerspectiveRemoveIgnoredMarginPerCell)

	dict := gocv.GetPredefinedDictionary(gocv.ArucoDict4x4_50)
	detector := gocv.NewArucoDetectorWithParams(dict, params)
	defer detector.Close()

	corners, ids, rejected := detector.DetectMarkers(mat)

	result := &Result{Rejected: len(rejected)}
	for i, id := range ids {
		if i >= len(corners) || len(corners[i]) != 4 {
			continue
		}
		cand := Candidate{ID: id}
		for j, p := range corners[i] {
			cand.Corners[j] = Point{X: float64(p.X), Y: float64(p.Y)}
		}
		result.Markers = append(result.Markers, cand)
	}
	return result, nil
}

func cornerRefinementCode(r CornerRefinement) int {
	switch r {
	case RefineSubpix:
		return int(gocv.ArucoCornerRefineMethodSubpix)
	case RefineContour:
		return int(gocv.ArucoCornerRefineMethodContour)
	default:
		return int(gocv.ArucoCornerRefineMethodNone)
	}
}
