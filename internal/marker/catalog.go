package marker

// Configs returns the fixed detector profile catalog, in sweep order. Each
// profile targets a distinct failure mode; together they trade detection
// coverage for the cost of running every profile on every image rendition.
//
// The catalog is a pure data table. Callers get a fresh slice on every call,
// so the profiles cannot be mutated out from under the sweep.
func Configs() []Config {
	return []Config{
		{
			// Wide threshold sweep, tiny perimeter floor, corners allowed on
			// the border. Finds small and near-border markers at the cost of
			// false-positive risk.
			Name:                                  "Aggressive small tags",
			AdaptiveThreshWinSizeMin:              3,
			AdaptiveThreshWinSizeMax:              53,
			AdaptiveThreshWinSizeStep:             4,
			MinMarkerPerimeterRate:                0.01,
			MaxMarkerPerimeterRate:                4.0,
			PolygonalApproxAccuracyRate:           0.05,
			CornerRefinement:                      RefineSubpix,
			CornerRefinementWinSize:               5,
			CornerRefinementMaxIterations:         50,
			MinDistanceToBorder:                   0,
			MinOtsuStdDev:                         2.0,
			PerspectiveRemoveIgnoredMarginPerCell: 0.15,
		},
		{
			// Narrower threshold range with contour-based refinement, tuned
			// for medium tags under perspective distortion.
			Name:                                  "Medium tags",
			AdaptiveThreshWinSizeMin:              5,
			AdaptiveThreshWinSizeMax:              25,
			AdaptiveThreshWinSizeStep:             5,
			MinMarkerPerimeterRate:                0.03,
			MaxMarkerPerimeterRate:                4.0,
			PolygonalApproxAccuracyRate:           0.03,
			CornerRefinement:                      RefineContour,
			CornerRefinementWinSize:               5,
			CornerRefinementMaxIterations:         30,
			MinDistanceToBorder:                   3,
			MinOtsuStdDev:                         3.0,
			PerspectiveRemoveIgnoredMarginPerCell: 0.2,
		},
		{
			// Widest single-direction threshold window and a low contrast
			// floor, tuned for defocused tags.
			Name:                                  "Blurry tags",
			AdaptiveThreshWinSizeMin:              7,
			AdaptiveThreshWinSizeMax:              35,
			AdaptiveThreshWinSizeStep:             10,
			MinMarkerPerimeterRate:                0.02,
			MaxMarkerPerimeterRate:                4.0,
			PolygonalApproxAccuracyRate:           0.03,
			CornerRefinement:                      RefineSubpix,
			CornerRefinementWinSize:               5,
			CornerRefinementMaxIterations:         30,
			MinDistanceToBorder:                   3,
			MinOtsuStdDev:                         1.5,
			PerspectiveRemoveIgnoredMarginPerCell: 0.13,
		},
	}
}
