package bench

import (
	"strings"
	"testing"
	"time"
)

func TestSortByNew_DescendingStable(t *testing.T) {
	results := []CombinationResult{
		{Label: "a", New: 0},
		{Label: "b", New: 2},
		{Label: "c", New: 0},
		{Label: "d", New: 2},
		{Label: "e", New: 5},
	}

	sorted := SortByNew(results)

	wantOrder := []string{"e", "b", "d", "a", "c"}
	for i, want := range wantOrder {
		if sorted[i].Label != want {
			t.Errorf("sorted[%d].Label = %q, want %q (ties keep input order)", i, sorted[i].Label, want)
		}
	}

	// Input must be untouched.
	if results[0].Label != "a" || results[4].Label != "e" {
		t.Error("SortByNew must not reorder its input slice")
	}
}

func TestSummarize_Partition(t *testing.T) {
	results := []CombinationResult{
		{New: 1, Elapsed: 100 * time.Millisecond},
		{New: 0, Elapsed: 200 * time.Millisecond},
		{New: 3, Elapsed: 300 * time.Millisecond},
		{New: 0, Elapsed: 400 * time.Millisecond},
	}
	total := 2 * time.Second

	s := Summarize(results, total)

	if s.Combinations != 4 {
		t.Errorf("Combinations = %d, want 4", s.Combinations)
	}
	if s.Useful != 2 || s.Useless != 2 {
		t.Errorf("partition = %d useful / %d useless, want 2/2", s.Useful, s.Useless)
	}
	if s.UsefulTime != 400*time.Millisecond {
		t.Errorf("UsefulTime = %v, want 400ms", s.UsefulTime)
	}
	if s.UselessTime != 600*time.Millisecond {
		t.Errorf("UselessTime = %v, want 600ms", s.UselessTime)
	}
	if s.WastedPercent != 30 {
		t.Errorf("WastedPercent = %v, want 30 (600ms of 2s)", s.WastedPercent)
	}
	if s.AveragePerCombination != 500*time.Millisecond {
		t.Errorf("AveragePerCombination = %v, want 500ms", s.AveragePerCombination)
	}
}

func TestSummarize_AllUseless(t *testing.T) {
	results := []CombinationResult{
		{New: 0, Elapsed: time.Second},
		{New: 0, Elapsed: time.Second},
	}

	s := Summarize(results, 4*time.Second)

	if s.Useful != 0 {
		t.Errorf("Useful = %d, want 0", s.Useful)
	}
	if s.WastedPercent != 50 {
		t.Errorf("WastedPercent = %v, want 50", s.WastedPercent)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, 0)

	if s.Combinations != 0 || s.Useful != 0 || s.Useless != 0 {
		t.Errorf("empty summary = %+v, want zeros", s)
	}
	if s.WastedPercent != 0 {
		t.Errorf("WastedPercent = %v, want 0 when total is zero", s.WastedPercent)
	}
}

func TestWriteCSV(t *testing.T) {
	results := []CombinationResult{
		{Label: "Scale 1.00 x Original x Medium tags", Found: 3, Rejected: 1, New: 2, Elapsed: 12345678 * time.Nanosecond},
		{Label: "Scale 0.75 x CLAHE x Blurry tags", Found: 0, Rejected: 0, New: 0, Elapsed: 1500 * time.Millisecond},
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, results); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "Combination,Found,Rejected,New,Time (s)" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Scale 1.00 x Original x Medium tags,3,1,2,0.012" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "Scale 0.75 x CLAHE x Blurry tags,0,0,0,1.500" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestWriteCSV_EmptySweepStillHasHeader(t *testing.T) {
	var buf strings.Builder
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	if got := strings.TrimRight(buf.String(), "\n"); got != "Combination,Found,Rejected,New,Time (s)" {
		t.Errorf("empty sweep CSV = %q, want header only", got)
	}
}
