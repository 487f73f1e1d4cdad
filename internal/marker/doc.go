// Package marker defines the square-fiducial detection primitive the
// benchmark sweeps over: the Detector interface, its parameter bundle, and
// the fixed catalog of tuned parameter profiles.
//
// Marker decoding itself (bit-pattern extraction, error correction) is
// deliberately outside this module: it is delegated to OpenCV's ArUco
// detector, reached through the gocv binding when the binary is built with
// the "gocv" tag. Builds without the tag get a stub Detector that returns an
// explanatory error, so the rest of the module (and its tests, which use
// fakes) stays buildable without OpenCV installed.
//
// # Coordinate Space
//
// A Detector reports corners in the pixel space of the image it was handed.
// Scale and variant bookkeeping is entirely the caller's job.
package marker
