// Package bench drives the combinatorial detection sweep and accounts for
// its cost.
//
// The Runner executes exactly one detection invocation per (scale, variant,
// configuration) triple, never skipping a triple: empty and low-yield
// combinations are a first-class output, because the point of the benchmark
// is to find out which strategy combinations earn their keep and which only
// burn time re-finding markers another combination already found.
//
// Per-triple outcomes are collected as CombinationResult records, which feed
// three consumers: the sorted console table, the CSV file for offline
// analysis, and the usefulness summary that expresses wasted combinatorial
// search cost as a percentage of total detection wall-clock time.
//
// The sweep is single-threaded and synchronous. The fuser's
// first-match-wins duplicate rule depends on triple iteration order (scale
// outer, variant middle, configuration inner), so any future parallelization
// would have to re-apply results to the fuser in this exact order to keep
// output deterministic.
package bench
