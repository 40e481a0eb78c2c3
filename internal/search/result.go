// Package search implements the parallel keyword scan engine: deterministic
// file enumeration, contiguous chunk partitioning, concurrent per-chunk
// scanning and result aggregation.
package search

// Result maps each requested keyword (original casing) to the file paths
// whose content contains it, case-insensitively.
type Result map[string][]string

// Report is the final output of a scan: the merged result plus the
// wall-clock duration of the concurrent scan phase only.
type Report struct {
	Results        Result  `json:"results"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// newResult pre-populates a Result with an empty path list for every
// keyword, so keys are present even when nothing matched.
func newResult(keywords []string) Result {
	r := make(Result, len(keywords))
	for _, kw := range keywords {
		r[kw] = []string{}
	}
	return r
}

// merge appends src's path lists onto dst. Callers are responsible for
// synchronization; merge itself holds no locks.
func merge(dst, src Result) {
	for kw, paths := range src {
		dst[kw] = append(dst[kw], paths...)
	}
}

// dedupeKeywords drops repeated keywords while preserving first-seen order
// and original casing. Duplicates are detected case-sensitively: "Rose" and
// "rose" stay distinct requests even though they match the same files.
func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out
}
