package bench

import (
	"sort"
	"time"
)

// SortByNew returns a copy of results sorted by New descending. The sort is
// stable, so ties keep the sweep iteration order and the table stays
// deterministic.
func SortByNew(results []CombinationResult) []CombinationResult {
	sorted := make([]CombinationResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].New > sorted[j].New
	})
	return sorted
}

// Summary partitions the sweep by usefulness: combinations that contributed
// at least one new observation versus those that only re-found markers (or
// found nothing). The useless partition's share of total wall-clock time is
// the key diagnostic this benchmark exists to produce.
type Summary struct {
	Combinations int `json:"combinations"`

	Useful  int `json:"useful"`
	Useless int `json:"useless"`

	UsefulTime  time.Duration `json:"useful_time"`
	UselessTime time.Duration `json:"useless_time"`

	// TotalTime is the wall-clock duration of the whole detection pass,
	// including preprocessing, as supplied by the caller.
	TotalTime time.Duration `json:"total_time"`

	// WastedPercent is UselessTime as a percentage of TotalTime.
	WastedPercent float64 `json:"wasted_percent"`

	AveragePerCombination time.Duration `json:"average_per_combination"`
}

// Summarize builds the usefulness partition for one sweep. total is the
// wall-clock duration of the whole pass.
func Summarize(results []CombinationResult, total time.Duration) Summary {
	s := Summary{Combinations: len(results), TotalTime: total}
	for _, r := range results {
		if r.New > 0 {
			s.Useful++
			s.UsefulTime += r.Elapsed
		} else {
			s.Useless++
			s.UselessTime += r.Elapsed
		}
	}
	if total > 0 {
		s.WastedPercent = float64(s.UselessTime) / float64(total) * 100
	}
	if len(results) > 0 {
		s.AveragePerCombination = total / time.Duration(len(results))
	}
	return s
}
