// Package fusion merges raw per-combination marker sightings into one
// de-duplicated observation list for the whole image.
package fusion

import (
	"math"
	"sort"

	"github.com/rodlab/tagbench/internal/marker"
)

// DuplicateRadius is the centroid distance, in original-image pixels, under
// which two sightings of the same identity count as one physical marker. The
// threshold is fixed rather than scale-relative because coordinates are
// normalized to original-image space before comparison.
const DuplicateRadius = 50.0

// DefaultAllowedIDs is the compiled-in set of marker identities considered
// valid. Everything else is noise to be counted and discarded.
var DefaultAllowedIDs = []int{20, 21, 22, 23, 36, 41, 47}

// Observation is one fused marker record. Corners and center are always in
// the coordinate space of the original, unscaled image, regardless of which
// scaled copy produced the raw sighting. An Observation is never mutated
// after creation: the first-seen geometry for a physical marker is retained
// and later duplicate sightings are dropped, not averaged in.
type Observation struct {
	ID      int             `json:"id"`
	Corners [4]marker.Point `json:"corners"`
	Center  marker.Point    `json:"center"`
}

// Admission is the verdict for one candidate offered to the Fuser.
type Admission int

const (
	// AdmissionRejected means the identity is outside the allow-list. The
	// candidate is counted and discarded, never stored.
	AdmissionRejected Admission = iota

	// AdmissionDuplicate means the same marker was already observed nearby;
	// the earlier geometry wins.
	AdmissionDuplicate

	// AdmissionAdded means a new Observation was retained.
	AdmissionAdded
)

// Fuser accumulates marker observations across one detection pass. It only
// grows; there is no removal, and the whole accumulator is discarded when the
// pass ends. Not safe for concurrent use: the first-match-wins duplicate rule
// makes admission order part of the output, so callers must feed candidates
// sequentially in sweep order.
type Fuser struct {
	allowed      map[int]struct{}
	observations []Observation
	rejected     int
}

// NewFuser creates an empty accumulator accepting the given identities.
func NewFuser(allowedIDs []int) *Fuser {
	allowed := make(map[int]struct{}, len(allowedIDs))
	for _, id := range allowedIDs {
		allowed[id] = struct{}{}
	}
	return &Fuser{allowed: allowed}
}

// Admit offers one raw candidate detected at the given scale factor.
//
// Candidates with an identity outside the allow-list are rejected before any
// geometry work. Otherwise the corners are mapped back to original-image
// space by dividing by scale (an exact no-op when scale is 1.0), the centroid
// is computed, and the candidate is compared against every accumulated
// Observation: a match on identity with centroid distance strictly under
// DuplicateRadius makes it a duplicate. Anything else becomes a new
// Observation.
//
// The scan is linear over the accumulated set, which is bounded by the number
// of physical markers in the image, not by pixel count.
func (f *Fuser) Admit(c marker.Candidate, scale float64) Admission {
	if _, ok := f.allowed[c.ID]; !ok {
		f.rejected++
		return AdmissionRejected
	}

	corners := c.Corners
	if scale != 1.0 {
		for i := range corners {
			corners[i].X /= scale
			corners[i].Y /= scale
		}
	}

	var cx, cy float64
	for _, p := range corners {
		cx += p.X
		cy += p.Y
	}
	center := marker.Point{X: cx / 4, Y: cy / 4}

	for _, existing := range f.observations {
		if existing.ID != c.ID {
			continue
		}
		dx := existing.Center.X - center.X
		dy := existing.Center.Y - center.Y
		if math.Sqrt(dx*dx+dy*dy) < DuplicateRadius {
			return AdmissionDuplicate
		}
	}

	f.observations = append(f.observations, Observation{
		ID:      c.ID,
		Corners: corners,
		Center:  center,
	})
	return AdmissionAdded
}

// Observations returns a copy of the accumulated observations in admission
// order.
func (f *Fuser) Observations() []Observation {
	out := make([]Observation, len(f.observations))
	copy(out, f.observations)
	return out
}

// Count returns the number of fused observations so far.
func (f *Fuser) Count() int {
	return len(f.observations)
}

// Rejected returns how many candidates were discarded for carrying an
// identity outside the allow-list.
func (f *Fuser) Rejected() int {
	return f.rejected
}

// SortObservations orders observations ascending by identity, then center X,
// then center Y, the order used for the final listing.
func SortObservations(obs []Observation) {
	sort.Slice(obs, func(i, j int) bool {
		if obs[i].ID != obs[j].ID {
			return obs[i].ID < obs[j].ID
		}
		if obs[i].Center.X != obs[j].Center.X {
			return obs[i].Center.X < obs[j].Center.X
		}
		return obs[i].Center.Y < obs[j].Center.Y
	})
}
