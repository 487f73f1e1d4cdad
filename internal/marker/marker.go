package marker

import "image"

// Point is a 2D pixel coordinate. Marker corners carry sub-pixel precision,
// so components are floating point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Candidate is one raw marker sighting reported by a Detector: the decoded
// integer identity and the four corner points, ordered as the detector emits
// them (top-left first, clockwise), in the coordinate space of the image that
// was searched.
type Candidate struct {
	ID      int      `json:"id"`
	Corners [4]Point `json:"corners"`
}

// Result contains everything one detection invocation produced.
type Result struct {
	// Markers are the successfully decoded candidates.
	Markers []Candidate `json:"markers"`

	// Rejected counts candidate polygons the detector found but could not
	// decode as markers. Diagnostic only; it feeds no report column.
	Rejected int `json:"rejected"`
}

// CornerRefinement selects the corner refinement pass applied after decoding.
type CornerRefinement int

const (
	// RefineNone keeps the raw contour corners.
	RefineNone CornerRefinement = iota

	// RefineSubpix iteratively refines corners to sub-pixel accuracy.
	RefineSubpix

	// RefineContour refines corners against the marker contour, which holds
	// up better under perspective distortion.
	RefineContour
)

// Config is a named, immutable bundle of detector tunables. Each field maps
// one-to-one onto a parameter of the underlying ArUco detector; the catalog
// in Configs spells out every field explicitly so no profile depends on
// defaults hidden in the binding.
type Config struct {
	Name string

	// Adaptive threshold window bounds and step, in pixels.
	AdaptiveThreshWinSizeMin  int
	AdaptiveThreshWinSizeMax  int
	AdaptiveThreshWinSizeStep int

	// Marker perimeter bounds relative to the image's larger dimension.
	MinMarkerPerimeterRate float64
	MaxMarkerPerimeterRate float64

	// Polygon approximation tolerance relative to the candidate perimeter.
	PolygonalApproxAccuracyRate float64

	CornerRefinement              CornerRefinement
	CornerRefinementWinSize       int
	CornerRefinementMaxIterations int

	// Minimum distance in pixels from a corner to the image border.
	MinDistanceToBorder int

	// Minimum contrast (Otsu standard deviation) for a cell to be decodable.
	MinOtsuStdDev float64

	// Margin of marker cells ignored when sampling bits, as a cell fraction.
	PerspectiveRemoveIgnoredMarginPerCell float64
}

// Detector locates square fiducial markers in an image.
//
// Detect runs one detection pass with the given parameter profile and returns
// every decoded candidate plus the rejected-candidate count. Detection over a
// decoded in-memory image is deterministic and side-effect-free; an error
// indicates an environment or programming problem and callers treat it as
// fatal to the whole pass rather than retrying.
type Detector interface {
	Detect(img image.Image, cfg Config) (*Result, error)
}
