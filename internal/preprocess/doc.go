// Package preprocess prepares the source image for the detection sweep.
//
// Detection quality on adverse inputs (small, blurry, or skewed tags under
// uneven lighting) depends heavily on what the detector is shown. Rather than
// guessing the one best preparation, this package produces a fixed catalog of
// renditions and lets the sweep try all of them:
//
//   - Variants: the unmodified image plus contrast-equalized, denoised, and
//     sharpened renditions (see BuildVariants).
//   - Scales: resized copies of each variant at the factors in Scales
//     (see Rescale).
//
// # Coordinate System
//
// All renditions share the source image's coordinate convention: origin at
// the top-left corner, X increasing rightward, Y increasing downward. Scaled
// copies live in their own pixel space; callers that collect detections from
// a scaled copy are responsible for mapping coordinates back (dividing by the
// scale factor).
//
// # Determinism
//
// Every function here is a pure transformation of its input. The same source
// image always yields byte-identical variants and scaled copies, which the
// downstream first-match-wins fusion rule relies on.
package preprocess
