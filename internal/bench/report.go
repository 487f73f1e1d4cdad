package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rodlab/tagbench/internal/fusion"
)

// WriteReport renders the human review report to w: headline counters, the
// combination table sorted by yield, the usefulness summary, and the fused
// observation listing.
//
// The exact textual layout is informational; the data it carries (per-triple
// counters, the usefulness partition, the sorted listing) is the contract.
func WriteReport(w io.Writer, results []CombinationResult, observations []fusion.Observation, rejected int, total time.Duration) {
	performed := 0
	for _, r := range results {
		if r.Found > 0 {
			performed++
		}
	}

	fmt.Fprintln(w, "Multi-strategy detection report")
	fmt.Fprintf(w, "Detections performed:      %d\n", performed)
	fmt.Fprintf(w, "Unauthorized IDs rejected: %d\n", rejected)
	fmt.Fprintf(w, "Valid tags detected:       %d\n", len(observations))
	fmt.Fprintf(w, "Detection duration:        %.2fs\n\n", total.Seconds())

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("Performance by combination")
	tw.AppendHeader(table.Row{"Combination", "Found", "Rejected", "New", "Time (s)"})
	for _, r := range SortByNew(results) {
		tw.AppendRow(table.Row{r.Label, r.Found, r.Rejected, r.New, fmt.Sprintf("%.3f", r.Elapsed.Seconds())})
	}
	tw.Render()

	s := Summarize(results, total)
	fmt.Fprintf(w, "\nUseful combinations (bring new tags): %d/%d (%.2fs)\n", s.Useful, s.Combinations, s.UsefulTime.Seconds())
	fmt.Fprintf(w, "Useless combinations (duplicates only): %d/%d (%.2fs, %.1f%% of total)\n",
		s.Useless, s.Combinations, s.UselessTime.Seconds(), s.WastedPercent)
	fmt.Fprintf(w, "Average time per combination: %.3fs\n", s.AveragePerCombination.Seconds())

	if len(observations) == 0 {
		fmt.Fprintln(w, "\nNo valid tag detected")
		return
	}

	sorted := make([]fusion.Observation, len(observations))
	copy(sorted, observations)
	fusion.SortObservations(sorted)

	fmt.Fprintln(w)
	lw := table.NewWriter()
	lw.SetOutputMirror(w)
	lw.SetTitle("Fused observations")
	lw.AppendHeader(table.Row{"#", "ID", "Center"})
	for i, o := range sorted {
		lw.AppendRow(table.Row{i + 1, o.ID, fmt.Sprintf("(%d, %d)", int(o.Center.X), int(o.Center.Y))})
	}
	lw.Render()
}
