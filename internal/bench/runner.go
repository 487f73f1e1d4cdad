package bench

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rodlab/tagbench/internal/fusion"
	"github.com/rodlab/tagbench/internal/marker"
	"github.com/rodlab/tagbench/internal/preprocess"
)

// CombinationResult records the outcome of one (scale, variant,
// configuration) triple. Created once per triple, immutable afterwards.
type CombinationResult struct {
	// Label describes the triple, e.g. "Scale 1.25 x CLAHE x Medium tags".
	Label string `json:"label"`

	// Found is how many candidates the detector decoded in this triple.
	Found int `json:"found"`

	// Rejected is how many of those carried an identity outside the
	// allow-list.
	Rejected int `json:"rejected"`

	// New is how many produced a new fused observation (neither rejected nor
	// a duplicate of an earlier sighting).
	New int `json:"new"`

	// Elapsed is the wall-clock time of the detection invocation alone.
	Elapsed time.Duration `json:"elapsed"`
}

// Runner executes the exhaustive detection sweep.
type Runner struct {
	detector marker.Detector
	scales   []float64
	configs  []marker.Config
	log      zerolog.Logger
}

// NewRunner creates a Runner over the fixed scale and configuration catalogs.
func NewRunner(detector marker.Detector, log zerolog.Logger) *Runner {
	return &Runner{
		detector: detector,
		scales:   preprocess.Scales,
		configs:  marker.Configs(),
		log:      log,
	}
}

// Run invokes the detector once per (scale, variant, configuration) triple,
// in that nesting order, feeding every candidate to fuser as it goes and
// timing each invocation.
//
// The iteration order is part of the contract: the fuser keeps the first
// sighting of each physical marker, so reordering the sweep changes which
// geometry wins. No triple is ever skipped; zero-yield combinations are
// recorded like any other.
//
// The first detector error aborts the sweep. Detection over a decoded
// in-memory image is deterministic, so a failure is an environment problem,
// not something to retry.
func (r *Runner) Run(variants []preprocess.Variant, fuser *fusion.Fuser) ([]CombinationResult, error) {
	results := make([]CombinationResult, 0, len(r.scales)*len(variants)*len(r.configs))

	for _, scale := range r.scales {
		for _, variant := range variants {
			scaled := preprocess.Rescale(variant.Image, scale)

			for _, cfg := range r.configs {
				start := time.Now()
				res, err := r.detector.Detect(scaled, cfg)
				elapsed := time.Since(start)
				if err != nil {
					return nil, fmt.Errorf("detection failed (scale %.2f, variant %s, config %s): %w",
						scale, variant.Name, cfg.Name, err)
				}

				combo := CombinationResult{
					Label:   fmt.Sprintf("Scale %.2f x %s x %s", scale, variant.Name, cfg.Name),
					Found:   len(res.Markers),
					Elapsed: elapsed,
				}
				for _, cand := range res.Markers {
					switch fuser.Admit(cand, scale) {
					case fusion.AdmissionRejected:
						combo.Rejected++
					case fusion.AdmissionAdded:
						combo.New++
					}
				}

				r.log.Debug().
					Str("combination", combo.Label).
					Int("found", combo.Found).
					Int("rejected", combo.Rejected).
					Int("new", combo.New).
					Int("undecodable_candidates", res.Rejected).
					Dur("elapsed", elapsed).
					Msg("combination complete")

				results = append(results, combo)
			}
		}
	}

	return results, nil
}
