package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rustica-os/boottest/pkg/boottest"
)

func passingOutcome(t boottest.Target) boottest.Outcome {
	return boottest.Outcome{
		Target: t,
		Verdict: boottest.Classify(t,
			"Loading kernel... Loading initramfs... Rustica OS Installer... root@host:~$ "),
	}
}

func failingOutcome(t boottest.Target) boottest.Outcome {
	return boottest.Outcome{
		Target:  t,
		Verdict: boottest.Classify(t, "kernel panic: out of memory"),
	}
}

func TestWriteDistinguishesNoDataFromFail(t *testing.T) {
	outcomes := []boottest.Outcome{
		passingOutcome(boottest.TargetX86_64),
		failingOutcome(boottest.TargetAArch64),
		{Target: boottest.TargetRISCV64, Indeterminate: true},
	}

	var buf bytes.Buffer
	Write(&buf, outcomes)
	got := buf.String()

	for _, want := range []string{
		"TARGET: x86_64",
		"5/5 PASS",
		"TARGET: aarch64",
		"FAIL",
		"TARGET: riscv64",
		"NO DATA",
		"BOOT TEST SUMMARY",
		"NOT ALL TARGETS PASSED",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report output missing %q:\n%s", want, got)
		}
	}

	// The indeterminate target must not render as a zero-passed verdict.
	if strings.Contains(got, "0/5") {
		t.Errorf("indeterminate target rendered as a failed verdict:\n%s", got)
	}
}

func TestAllPassed(t *testing.T) {
	pass := passingOutcome(boottest.TargetX86_64)
	fail := failingOutcome(boottest.TargetX86_64)
	noData := boottest.Outcome{Target: boottest.TargetX86_64, Indeterminate: true}

	tests := []struct {
		name     string
		outcomes []boottest.Outcome
		want     bool
	}{
		{"all_pass", []boottest.Outcome{pass, pass, pass}, true},
		{"one_fail", []boottest.Outcome{pass, fail}, false},
		{"one_indeterminate", []boottest.Outcome{pass, noData}, false},
		{"empty", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllPassed(tt.outcomes); got != tt.want {
				t.Errorf("AllPassed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	outcomes := []boottest.Outcome{
		passingOutcome(boottest.TargetX86_64),
		{Target: boottest.TargetRISCV64, Indeterminate: true},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, outcomes); err != nil {
		t.Fatal(err)
	}

	var summary Summary
	if err := json.Unmarshal(buf.Bytes(), &summary); err != nil {
		t.Fatalf("report JSON does not parse: %v", err)
	}
	if len(summary.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(summary.Results))
	}
	if !summary.Results[0].Verdict.Success {
		t.Error("passing verdict lost in JSON round trip")
	}
	if !summary.Results[1].Indeterminate {
		t.Error("indeterminate flag lost in JSON round trip")
	}
}

func TestSeverityGlyphs(t *testing.T) {
	seen := map[string]bool{}
	for _, sev := range []Severity{SeverityPass, SeverityFail, SeverityWarn, SeverityInfo} {
		glyph := sev.Glyph()
		if glyph == "" {
			t.Errorf("severity %d has empty glyph", sev)
		}
		if seen[glyph] {
			t.Errorf("glyph %q reused across severities", glyph)
		}
		seen[glyph] = true
	}
}

func TestStyledWrapsWithReset(t *testing.T) {
	got := Styled(SeverityFail, "FAIL")
	if !strings.Contains(got, "FAIL") || !strings.HasSuffix(got, "\033[0m") {
		t.Errorf("Styled output malformed: %q", got)
	}
}
