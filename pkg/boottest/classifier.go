package boottest

import (
	"os"
	"strings"
)

// Classify scores a transcript against BootChecks and returns the Verdict.
//
// Matching is case-insensitive substring search, the same log scraping the
// QEMU harness does on live console output. Multiple occurrences of a
// pattern count once. A panic marker fails no-panic even if the transcript
// later shows a healthy shell prompt; the classifier does not reason about
// whether the panic was fatal. An empty transcript passes only no-panic.
//
// Classify is a pure function: same transcript in, same Verdict out.
func Classify(target Target, transcript string) Verdict {
	text := strings.ToLower(transcript)

	results := make([]CheckResult, 0, len(BootChecks))
	for _, check := range BootChecks {
		found := false
		for _, pattern := range check.Patterns {
			if strings.Contains(text, pattern) {
				found = true
				break
			}
		}
		passed := found
		if check.ExpectAbsent {
			passed = !found
		}
		results = append(results, CheckResult{Label: check.Label, Passed: passed})
	}

	return newVerdict(target, results)
}

// ClassifyFile reads the transcript at path and classifies it.
//
// A missing or unreadable transcript is not an error: it means the harness
// never captured a log, and the caller needs to tell that apart from a boot
// that ran and failed. Those cases come back as an indeterminate Outcome
// instead of a zero-passed Verdict. Binary or garbled content is scored
// best-effort as text.
func ClassifyFile(target Target, path string) Outcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return Outcome{Target: target, Indeterminate: true}
	}
	return Outcome{Target: target, Verdict: Classify(target, string(data))}
}

// ClassifyDir classifies every supported target from its transcript file
// inside dir. One target's missing or failing transcript never prevents
// classification of the rest.
func ClassifyDir(dir string) []Outcome {
	outcomes := make([]Outcome, 0, len(Targets))
	for _, target := range Targets {
		outcomes = append(outcomes, ClassifyFile(target, target.TranscriptPath(dir)))
	}
	return outcomes
}
