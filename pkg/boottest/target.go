// Package boottest classifies serial console transcripts from installer
// boot attempts into structured pass/fail verdicts.
//
// The classifier is the counterpart of the QEMU smoke-test harness: the
// harness boots an installer image per architecture and captures the serial
// console to a log file; this package scores that log against a fixed set
// of boot checks. It never invokes the emulator itself.
package boottest

import (
	"fmt"
	"path/filepath"
)

// Target is one supported CPU architecture under test.
type Target string

// The supported architectures. The string form matches the QEMU system
// binary suffix (qemu-system-x86_64 etc.) and the transcript file naming
// used by the boot harness.
const (
	TargetX86_64  Target = "x86_64"
	TargetAArch64 Target = "aarch64"
	TargetRISCV64 Target = "riscv64"
)

// Targets lists every supported architecture in display order.
var Targets = []Target{
	TargetX86_64,
	TargetAArch64,
	TargetRISCV64,
}

// ParseTarget validates an architecture name from user input.
func ParseTarget(s string) (Target, error) {
	for _, t := range Targets {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown target %q (supported: %s)", s, TargetNames())
}

// TargetNames returns the supported architecture names for usage text.
func TargetNames() string {
	out := ""
	for i, t := range Targets {
		if i > 0 {
			out += ", "
		}
		out += string(t)
	}
	return out
}

// TranscriptPath returns the transcript file the boot harness writes for
// this target inside the given directory.
func (t Target) TranscriptPath(dir string) string {
	return filepath.Join(dir, fmt.Sprintf("boot-%s.log", t))
}
