package boottest

// CheckResult is the outcome of one check against one transcript.
type CheckResult struct {
	Label  string `json:"label"`
	Passed bool   `json:"passed"`
}

// Verdict is the structured result of classifying one target's transcript.
//
// Success is derived from the per-check results when the Verdict is built
// and is true iff every check passed; it is never set independently, so the
// summary cannot disagree with the detail.
type Verdict struct {
	Target  Target        `json:"target"`
	Checks  []CheckResult `json:"checks"`
	Passed  int           `json:"passed"`
	Total   int           `json:"total"`
	Success bool          `json:"success"`
}

// Outcome wraps a Verdict with the indeterminate state.
//
// Indeterminate means no transcript was captured for the target at all,
// which is a different condition from a transcript that fails checks. When
// Indeterminate is true the Verdict carries zero checks and must not be
// read as "everything failed".
type Outcome struct {
	Target        Target  `json:"target"`
	Indeterminate bool    `json:"indeterminate"`
	Verdict       Verdict `json:"verdict"`
}

func newVerdict(target Target, results []CheckResult) Verdict {
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	return Verdict{
		Target:  target,
		Checks:  results,
		Passed:  passed,
		Total:   len(results),
		Success: passed == len(results),
	}
}
