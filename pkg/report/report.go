package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rustica-os/boottest/pkg/boottest"
)

// Summary is the machine-readable form of one report run.
type Summary struct {
	GeneratedAt time.Time          `json:"generatedAt"`
	Results     []boottest.Outcome `json:"results"`
}

// AllPassed reports whether every target produced a successful verdict.
// An indeterminate outcome counts as not passed: no evidence of a good
// boot was captured.
func AllPassed(outcomes []boottest.Outcome) bool {
	for _, out := range outcomes {
		if out.Indeterminate || !out.Verdict.Success {
			return false
		}
	}
	return true
}

// outcomeSeverity maps an outcome to its summary-line severity. NO DATA is
// a warning, not a failure: it means the harness broke, not the OS.
func outcomeSeverity(out boottest.Outcome) Severity {
	switch {
	case out.Indeterminate:
		return SeverityWarn
	case out.Verdict.Success:
		return SeverityPass
	default:
		return SeverityFail
	}
}

// WriteTarget renders the per-check breakdown for a single outcome.
func WriteTarget(w io.Writer, out boottest.Outcome) {
	header := fmt.Sprintf("TARGET: %s", out.Target)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	if out.Indeterminate {
		fmt.Fprintf(w, "  %s no transcript captured - boot test did not run\n", SeverityWarn.Glyph())
		fmt.Fprintln(w, "  Result: NO DATA")
		return
	}

	for _, check := range out.Verdict.Checks {
		sev := SeverityFail
		if check.Passed {
			sev = SeverityPass
		}
		fmt.Fprintf(w, "  %s %s\n", sev.Glyph(), check.Label)
	}

	status := "FAIL"
	if out.Verdict.Success {
		status = "PASS"
	}
	fmt.Fprintf(w, "  Result: %d/%d %s\n", out.Verdict.Passed, out.Verdict.Total, status)
}

// Write renders the full console report: one breakdown per target followed
// by the summary table. Indeterminate targets are marked NO DATA so an
// operator can tell a broken harness apart from an OS that does not boot.
func Write(w io.Writer, outcomes []boottest.Outcome) {
	for _, out := range outcomes {
		WriteTarget(w, out)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "BOOT TEST SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	for _, out := range outcomes {
		sev := outcomeSeverity(out)
		if out.Indeterminate {
			fmt.Fprintf(w, "  %s %-10s -/- NO DATA\n", sev.Glyph(), out.Target)
			continue
		}
		status := "FAIL"
		if out.Verdict.Success {
			status = "PASS"
		}
		fmt.Fprintf(w, "  %s %-10s %d/%d %s\n",
			sev.Glyph(), out.Target, out.Verdict.Passed, out.Verdict.Total, status)
	}

	if AllPassed(outcomes) {
		fmt.Fprintf(w, "\n%s ALL TARGETS PASSED\n", SeverityPass.Glyph())
	} else {
		fmt.Fprintf(w, "\n%s NOT ALL TARGETS PASSED\n", SeverityFail.Glyph())
	}
}

// WriteJSON writes the Summary document for machine consumers.
func WriteJSON(w io.Writer, outcomes []boottest.Outcome) error {
	summary := Summary{
		GeneratedAt: time.Now().UTC(),
		Results:     outcomes,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
